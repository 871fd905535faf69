package domain

// DefaultPageLimit is the page size used when a listing request omits limit.
const DefaultPageLimit = 10

// MaxPageLimit caps the page size a client may request.
const MaxPageLimit = 100

// HomePageArticles is how many articles the listing page shows.
const HomePageArticles = 20

// PasswordCost is the bcrypt work factor for stored credentials.
const PasswordCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

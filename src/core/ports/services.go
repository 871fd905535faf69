package ports

// PasswordHasher turns secrets into one-way hashes and checks them.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

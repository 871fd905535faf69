// Package domain contains the core domain model for the news site.
//
// This package defines:
//   - Entities: Article, User and Category as stored in PostgreSQL
//   - Read models: ArticleSummary, the joined listing row
//   - Domain Errors: the closed set of failure kinds surfaced to clients
//
// Rules for this package:
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Struct tags describe column and JSON names only
package domain

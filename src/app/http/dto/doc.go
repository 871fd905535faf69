// Package dto contains Data Transfer Objects for HTTP requests and responses.
//
// DTOs are separate from domain entities to:
//   - Control what data is exposed in the API
//   - Handle JSON and query string binding
//   - Add validation tags for request binding
//
// Naming convention:
//   - Request types: <Action><Resource>Request (e.g., CreateArticleRequest)
//   - Query types: <Resource>Query (e.g., ArticleListQuery)
//   - Response types: <Resource>Response (e.g., ArticleListResponse)
package dto

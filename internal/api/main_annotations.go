// @title           joe-photos API
// @version         1.0
// @description     Photo albums with Person and Location tags, tag search and value suggestions.
// @BasePath        /api/v1
package api

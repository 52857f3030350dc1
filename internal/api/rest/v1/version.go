package v1

// BasePath is the URL prefix of all version 1 API routes.
const BasePath = "/api/v1/abs"

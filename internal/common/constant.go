package common

// BearerSchema is the prefix of an Authorization header carrying an access
// token.
const BearerSchema = "Bearer "

// TokenType is the token_type value returned by the login endpoint.
const TokenType = "bearer"

package v1

// Version of the REST API
const Version = "v1"

// BasePath is the prefix of every article route
const BasePath = "/"

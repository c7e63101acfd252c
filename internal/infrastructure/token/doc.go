// Package token implements bearer token issuing and verification with golang-jwt.
package token

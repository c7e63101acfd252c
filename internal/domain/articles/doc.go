// Package articles holds the article entity, its error taxonomy and the contracts
// implemented by the application and infrastructure layers.
package articles

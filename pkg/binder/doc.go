// Package binder fills request structs from HTTP requests.
//
// Query reads `query`-tagged fields from the URL, Signals decodes datastar
// signals. Both return errors wrapping a package sentinel so the handler
// layer can answer 400 without inspecting messages.
package binder

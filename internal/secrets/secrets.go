// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads catalog credentials from a directory of
// plain-text files, one file per secret: the filename is the key name
// and the trimmed file contents are the value.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// catalogTokenFile holds the bearer token for the remote catalog
// endpoint.
const catalogTokenFile = "catalog-api-token"

// Credentials holds the secrets the browser knows how to use.
type Credentials struct {
	// CatalogToken, when non-empty, is sent as a bearer Authorization
	// header on the catalog fetch.
	CatalogToken string
}

// Load reads the known secret files from dir. A missing directory or
// missing files are not errors — the catalog fetch simply runs
// unauthenticated. Any other read failure aborts.
func Load(dir string) (Credentials, error) {
	var creds Credentials

	data, err := os.ReadFile(filepath.Join(dir, catalogTokenFile))
	switch {
	case err == nil:
		creds.CatalogToken = strings.TrimSpace(string(data))
	case os.IsNotExist(err):
	default:
		return Credentials{}, fmt.Errorf("reading secret %s: %w", catalogTokenFile, err)
	}

	return creds, nil
}

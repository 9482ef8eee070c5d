// Package all registers every catalog source type.
package all

import (
	_ "github.com/bornholm/vitrine/internal/catalog/source/builtin"
	_ "github.com/bornholm/vitrine/internal/catalog/source/file"
	_ "github.com/bornholm/vitrine/internal/catalog/source/s3"
	_ "github.com/bornholm/vitrine/internal/catalog/source/sqlite"
)

package engine

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"manajemen-toko/src/models"
)

const (
	DefaultItemPrefix  = "BRG"
	DefaultAssetPrefix = "AST"
)

// SequenceCode formats PREFIX-NNN.
func SequenceCode(prefix string, seq int) string {
	return fmt.Sprintf("%s-%03d", prefix, seq)
}

// PrefixFromName derives a category prefix from its first three letters.
func PrefixFromName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > 3 {
		name = string([]rune(name)[:3])
	}
	return strings.ToUpper(name)
}

// NextSKU numbers a new item after the items already in its category. When a
// deletion left a gap the sequence moves forward until the code is free.
func NextSKU(store *models.Store, categoryID string) string {
	prefix := DefaultItemPrefix
	if c, ok := store.ItemCategory(categoryID); ok && c.Prefix != "" {
		prefix = c.Prefix
	}
	taken := make(map[string]bool, len(store.Items))
	seq := 1
	for _, item := range store.Items {
		taken[item.SKU] = true
		if item.CategoryID == categoryID {
			seq++
		}
	}
	return nextFree(prefix, seq, taken)
}

func NextAssetCode(store *models.Store, categoryID string) string {
	prefix := DefaultAssetPrefix
	if c, ok := store.AssetCategory(categoryID); ok && c.Prefix != "" {
		prefix = c.Prefix
	}
	taken := make(map[string]bool, len(store.Assets))
	seq := 1
	for _, a := range store.Assets {
		taken[a.Code] = true
		if a.CategoryID == categoryID {
			seq++
		}
	}
	return nextFree(prefix, seq, taken)
}

func nextFree(prefix string, seq int, taken map[string]bool) string {
	code := SequenceCode(prefix, seq)
	for taken[code] {
		seq++
		code = SequenceCode(prefix, seq)
	}
	return code
}

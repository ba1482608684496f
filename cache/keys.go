package cache

import "fmt"

// Entity tags. Every cached listing key starts with one of these, so a
// write can clear all of an entity's listings in one prefix delete.
const (
	TagDish    = "dish"
	TagSetmeal = "setmeal"
)

// ListKey builds the key for a filtered listing, e.g. "dish_7_1".
// The same (tag, categoryID, status) triple always yields the same key.
func ListKey(tag string, categoryID uint, status int) string {
	return fmt.Sprintf("%s_%d_%d", tag, categoryID, status)
}

// TagPrefix is the prefix covering every listing key of one entity tag.
func TagPrefix(tag string) string {
	return tag + "_"
}

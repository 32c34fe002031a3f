package repository

import (
	"strings"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsFold matches rows whose column contains term, ignoring case.
// LIKE wildcards inside term are matched literally.
func ContainsFold(column, term string) Predicate {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
	}
}

func In(column string, ids []uint) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" IN ?", ids)
	}
}

func Equals(column string, value interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

func IDEquals(id uint) Predicate {
	return Equals("id", id)
}

package queries

import (
	"strings"

	"gorm.io/gorm"
)

// likeEscape is the escape character used in LIKE clauses. A backslash would
// need different quoting in PostgreSQL and MySQL; '!' reads the same in both.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// containsPattern turns user text into a case-folded LIKE pattern that
// matches it as a literal substring.
func containsPattern(text string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
}

// idAsText renders the numeric id column as text in the connected dialect.
func idAsText(db *gorm.DB) string {
	if db.Dialector != nil && db.Dialector.Name() == "mysql" {
		return "CAST(id AS CHAR)"
	}
	return "CAST(id AS TEXT)"
}

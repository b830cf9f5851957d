package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthor_String(t *testing.T) {
	birth, death := 1797, 1851
	assert.Equal(t, "Mary Wollstonecraft Shelley (1797 - 1851)", Author{Name: "Mary Wollstonecraft Shelley", BirthYear: &birth, DeathYear: &death}.String())
	assert.Equal(t, "Still Writing (1950 - ?)", Author{Name: "Still Writing", BirthYear: intPtr(1950)}.String())
	assert.Equal(t, "(? - ?)", Author{}.Lifespan())
}

func intPtr(v int) *int { return &v }

func TestBook_Validate(t *testing.T) {
	valid := Book{Title: "Dom Casmurro", Language: "pt", Author: Author{Name: "Machado de Assis"}}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = ""
	assert.ErrorContains(t, noTitle.Validate(), "Title")

	badLang := valid
	badLang.Language = "Portuguese"
	assert.ErrorContains(t, badLang.Validate(), "langcode")

	noAuthor := valid
	noAuthor.Author.Name = ""
	assert.ErrorContains(t, noAuthor.Validate(), "Author.Name")

	negative := valid
	negative.DownloadCount = -1
	assert.Error(t, negative.Validate())
}

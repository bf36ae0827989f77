package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaptionRecordLabel(t *testing.T) {
	assert.Equal(t, "a.jpg: sunset", CaptionRecord{Filename: "a.jpg", Caption: "sunset"}.Label())
	assert.Equal(t, "b.jpg: ", NewCaptionRecord("b.jpg").Label())
}

func TestWorkingListHelpers(t *testing.T) {
	list := WorkingList{
		{Filename: "a.jpg", Caption: "one"},
		{Filename: "b.jpg"},
		{Filename: "a.jpg", Caption: "two"},
	}

	assert.Equal(t, 1, list.Duplicates())
	assert.Equal(t, 2, list.Captioned())
	assert.Equal(t, map[string]string{"a.jpg": "one", "b.jpg": ""}, list.AsMapping())
	assert.Equal(t, []string{"a.jpg", "b.jpg", "a.jpg"}, list.Filenames())

	cloned := list.Clone()
	cloned[0].Caption = "changed"
	assert.Equal(t, "one", list[0].Caption)
	assert.Nil(t, WorkingList(nil).Clone())
}

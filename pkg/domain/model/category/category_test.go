package category_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/santara-lab/santara/pkg/domain/model/category"
	"github.com/santara-lab/santara/pkg/domain/types"
)

func TestDefaultRegistry(t *testing.T) {
	r := category.Default()

	gt.Array(t, r.List()).Length(4)

	c, ok := r.Lookup("player-report")
	gt.True(t, ok)
	gt.Value(t, c.Label).Equal("Player Report")
	gt.Value(t, c.ChannelPrefix).Equal("report")
	gt.Array(t, c.Fields).Length(3)
}

func TestLookupUnknownKeyFallsBack(t *testing.T) {
	r := category.Default()

	c, ok := r.Lookup("legacy-vip-complaint")
	gt.False(t, ok)
	gt.Value(t, c.Key).Equal(types.CategoryKey("legacy-vip-complaint"))
	gt.Value(t, c.Label).Equal("legacy-vip-complaint")
}

func TestLoadFile(t *testing.T) {
	doc := `
categories:
  - key: billing
    label: Billing Issue
    icon: "💳"
    channel_prefix: billing
    fields:
      - key: invoice
        label: Invoice number
        required: true
  - key: other
    label: Other
`
	path := filepath.Join(t.TempDir(), "categories.yml")
	gt.NoError(t, os.WriteFile(path, []byte(doc), 0o644)).Required()

	r := gt.R1(category.LoadFile(path)).NoError(t)

	gt.Array(t, r.List()).Length(2)
	c, ok := r.Lookup("billing")
	gt.True(t, ok)
	gt.Value(t, c.Label).Equal("Billing Issue")
	gt.Array(t, c.Fields).Length(1)
	gt.True(t, c.Fields[0].Required)
	gt.False(t, r.Has("player-report"))
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := category.LoadFile(filepath.Join(t.TempDir(), "nope.yml"))
		gt.Error(t, err)
	})

	t.Run("empty document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yml")
		gt.NoError(t, os.WriteFile(path, []byte("categories: []\n"), 0o644)).Required()
		_, err := category.LoadFile(path)
		gt.Error(t, err)
	})

	t.Run("duplicate keys", func(t *testing.T) {
		doc := "categories:\n  - key: a\n    label: A\n  - key: a\n    label: B\n"
		path := filepath.Join(t.TempDir(), "dup.yml")
		gt.NoError(t, os.WriteFile(path, []byte(doc), 0o644)).Required()
		_, err := category.LoadFile(path)
		gt.Error(t, err)
	})

	t.Run("field without label", func(t *testing.T) {
		doc := "categories:\n  - key: a\n    label: A\n    fields:\n      - key: x\n"
		path := filepath.Join(t.TempDir(), "badfield.yml")
		gt.NoError(t, os.WriteFile(path, []byte(doc), 0o644)).Required()
		_, err := category.LoadFile(path)
		gt.Error(t, err)
	})
}

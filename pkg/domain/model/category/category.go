package category

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/santara-lab/santara/pkg/domain/types"
	"gopkg.in/yaml.v3"
)

// FieldDescriptor describes one input of the intake form shown when a
// ticket of this category is opened.
type FieldDescriptor struct {
	Key       string `yaml:"key" json:"key"`
	Label     string `yaml:"label" json:"label"`
	Hint      string `yaml:"hint,omitempty" json:"hint,omitempty"`
	Required  bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Multiline bool   `yaml:"multiline,omitempty" json:"multiline,omitempty"`
}

// Category is the display and routing metadata for one ticket kind.
type Category struct {
	Key           types.CategoryKey `yaml:"key" json:"key"`
	Label         string            `yaml:"label" json:"label"`
	Description   string            `yaml:"description,omitempty" json:"description,omitempty"`
	Icon          string            `yaml:"icon,omitempty" json:"icon,omitempty"`
	ChannelPrefix string            `yaml:"channel_prefix,omitempty" json:"channel_prefix,omitempty"`
	Fields        []FieldDescriptor `yaml:"fields,omitempty" json:"fields,omitempty"`
}

func (x Category) Validate() error {
	if x.Key == "" {
		return goerr.New("category key is empty")
	}
	if x.Label == "" {
		return goerr.New("category label is empty", goerr.V("key", x.Key))
	}
	for _, f := range x.Fields {
		if f.Key == "" || f.Label == "" {
			return goerr.New("category field needs key and label",
				goerr.V("category", x.Key), goerr.V("field", f))
		}
	}
	return nil
}

// Registry resolves category keys to metadata. Lookups never fail: a key
// with no registered entry resolves to a synthetic category that reuses
// the raw key as its label, so tickets written under retired or renamed
// categories still render.
type Registry struct {
	categories []Category
	index      map[types.CategoryKey]int
}

func NewRegistry(categories []Category) (*Registry, error) {
	r := &Registry{
		categories: categories,
		index:      make(map[types.CategoryKey]int, len(categories)),
	}
	for i, c := range categories {
		if err := c.Validate(); err != nil {
			return nil, goerr.Wrap(err, "invalid category")
		}
		if _, ok := r.index[c.Key]; ok {
			return nil, goerr.New("duplicate category key", goerr.V("key", c.Key))
		}
		r.index[c.Key] = i
	}
	return r, nil
}

// Default returns the built-in registry used when no category file is
// configured.
func Default() *Registry {
	r, err := NewRegistry([]Category{
		{
			Key:           "player-report",
			Label:         "Player Report",
			Description:   "Report a player breaking the rules",
			Icon:          "🚨",
			ChannelPrefix: "report",
			Fields: []FieldDescriptor{
				{Key: "target", Label: "Who are you reporting?", Required: true},
				{Key: "details", Label: "What happened?", Required: true, Multiline: true},
				{Key: "evidence", Label: "Evidence (links, screenshots)", Multiline: true},
			},
		},
		{
			Key:           "staff-report",
			Label:         "Staff Report",
			Description:   "Report a staff member",
			Icon:          "🛡️",
			ChannelPrefix: "staff-report",
			Fields: []FieldDescriptor{
				{Key: "target", Label: "Which staff member?", Required: true},
				{Key: "details", Label: "What happened?", Required: true, Multiline: true},
			},
		},
		{
			Key:           "unban-request",
			Label:         "Unban Request",
			Description:   "Appeal a ban",
			Icon:          "🔓",
			ChannelPrefix: "unban",
			Fields: []FieldDescriptor{
				{Key: "reason", Label: "Why were you banned?", Required: true, Multiline: true},
				{Key: "appeal", Label: "Why should the ban be lifted?", Required: true, Multiline: true},
			},
		},
		{
			Key:           "asset-refund",
			Label:         "Asset Refund",
			Description:   "Request a refund of lost items",
			Icon:          "💰",
			ChannelPrefix: "refund",
			Fields: []FieldDescriptor{
				{Key: "items", Label: "What did you lose?", Required: true, Multiline: true},
				{Key: "cause", Label: "How did you lose it?", Required: true, Multiline: true},
			},
		},
	})
	if err != nil {
		panic("built-in categories are invalid: " + err.Error())
	}
	return r
}

// LoadFile reads a registry from a YAML document of the form
// `categories: [...]`.
func LoadFile(path string) (*Registry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read category file", goerr.V("path", path))
	}

	var doc struct {
		Categories []Category `yaml:"categories"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse category file", goerr.V("path", path))
	}
	if len(doc.Categories) == 0 {
		return nil, goerr.New("category file has no categories", goerr.V("path", path))
	}

	return NewRegistry(doc.Categories)
}

// Lookup resolves a key. The second return reports whether the category
// is registered; the first is always usable.
func (x *Registry) Lookup(key types.CategoryKey) (Category, bool) {
	if i, ok := x.index[key]; ok {
		return x.categories[i], true
	}
	return Category{Key: key, Label: key.String()}, false
}

func (x *Registry) List() []Category {
	out := make([]Category, len(x.categories))
	copy(out, x.categories)
	return out
}

func (x *Registry) Has(key types.CategoryKey) bool {
	_, ok := x.index[key]
	return ok
}

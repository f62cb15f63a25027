// Package catalog serves the static job-role, course, and video data used
// by the analyzer. The catalog ships embedded in the binary and can be
// replaced with an operator-supplied YAML file.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// ErrNotFound is returned when a category or role is absent from the catalog.
var ErrNotFound = errors.New("not found in catalog")

// RoleProfile describes a target job role and its requirements.
type RoleProfile struct {
	Name           string   `mapstructure:"name"`
	Category       string   `mapstructure:"-"`
	Description    string   `mapstructure:"description"`
	RequiredSkills []string `mapstructure:"required_skills"`
}

// Course is a recommended learning resource for a role.
type Course struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

// Video is a recommended video resource for a topic (resume or interview tips).
type Video struct {
	Name string `mapstructure:"name"`
	URL  string `mapstructure:"url"`
}

type category struct {
	Name  string        `mapstructure:"name"`
	Roles []RoleProfile `mapstructure:"roles"`
}

type courseGroup struct {
	Role  string   `mapstructure:"role"`
	Items []Course `mapstructure:"items"`
}

type videoGroup struct {
	Topic string  `mapstructure:"topic"`
	Items []Video `mapstructure:"items"`
}

type document struct {
	Categories []category    `mapstructure:"categories"`
	Courses    []courseGroup `mapstructure:"courses"`
	Videos     []videoGroup  `mapstructure:"videos"`
}

// Catalog is an immutable view over the loaded role and recommendation data.
type Catalog struct {
	categories []category
	courses    map[string][]Course
	videos     map[string][]Video
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return load(func(v *viper.Viper) error {
		v.SetConfigType("yaml")
		return v.ReadConfig(bytes.NewReader(embeddedCatalog))
	})
}

// LoadFile parses a catalog from the given YAML file, replacing the
// embedded data entirely.
func LoadFile(path string) (*Catalog, error) {
	return load(func(v *viper.Viper) error {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	})
}

func load(read func(*viper.Viper) error) (*Catalog, error) {
	v := viper.New()
	if err := read(v); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var doc document
	if err := mapstructure.Decode(v.AllSettings(), &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if len(doc.Categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}

	c := &Catalog{
		categories: doc.Categories,
		courses:    make(map[string][]Course, len(doc.Courses)),
		videos:     make(map[string][]Video, len(doc.Videos)),
	}

	for i := range c.categories {
		cat := &c.categories[i]
		if strings.TrimSpace(cat.Name) == "" {
			return nil, errors.New("catalog category without a name")
		}
		for j := range cat.Roles {
			role := &cat.Roles[j]
			if strings.TrimSpace(role.Name) == "" {
				return nil, fmt.Errorf("category %q has a role without a name", cat.Name)
			}
			role.Category = cat.Name
			role.RequiredSkills = dedupeSkills(role.RequiredSkills)
		}
	}

	for _, group := range doc.Courses {
		c.courses[strings.ToLower(group.Role)] = group.Items
	}
	for _, group := range doc.Videos {
		c.videos[strings.ToLower(group.Topic)] = group.Items
	}

	return c, nil
}

// dedupeSkills removes case-insensitive duplicates while preserving the
// original casing and order of first occurrence.
func dedupeSkills(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	result := make([]string, 0, len(skills))

	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, skill)
	}

	return result
}

// Categories returns category names in catalog order.
func (c *Catalog) Categories() []string {
	names := make([]string, 0, len(c.categories))
	for _, cat := range c.categories {
		names = append(names, cat.Name)
	}
	return names
}

// Roles returns the role names of a category in catalog order.
func (c *Catalog) Roles(categoryName string) ([]string, error) {
	cat := c.findCategory(categoryName)
	if cat == nil {
		return nil, fmt.Errorf("%w: category %q", ErrNotFound, categoryName)
	}

	names := make([]string, 0, len(cat.Roles))
	for _, role := range cat.Roles {
		names = append(names, role.Name)
	}
	return names, nil
}

// Lookup returns the profile for the given category and role. Matching is
// case-insensitive; the returned profile keeps the catalog casing.
func (c *Catalog) Lookup(categoryName, roleName string) (*RoleProfile, error) {
	cat := c.findCategory(categoryName)
	if cat == nil {
		return nil, fmt.Errorf("%w: category %q", ErrNotFound, categoryName)
	}

	for i := range cat.Roles {
		if strings.EqualFold(cat.Roles[i].Name, roleName) {
			profile := cat.Roles[i]
			return &profile, nil
		}
	}

	return nil, fmt.Errorf("%w: role %q in category %q", ErrNotFound, roleName, categoryName)
}

// CoursesForRole returns recommended courses for a role, or nil when the
// catalog has none.
func (c *Catalog) CoursesForRole(roleName string) []Course {
	return c.courses[strings.ToLower(roleName)]
}

// CategoryForRole returns the category containing the role, or an empty
// string when the role is unknown.
func (c *Catalog) CategoryForRole(roleName string) string {
	for _, cat := range c.categories {
		for _, role := range cat.Roles {
			if strings.EqualFold(role.Name, roleName) {
				return cat.Name
			}
		}
	}
	return ""
}

// Videos returns the video list for a topic ("resume" or "interview").
func (c *Catalog) Videos(topic string) []Video {
	return c.videos[strings.ToLower(topic)]
}

func (c *Catalog) findCategory(name string) *category {
	for i := range c.categories {
		if strings.EqualFold(c.categories[i].Name, name) {
			return &c.categories[i]
		}
	}
	return nil
}

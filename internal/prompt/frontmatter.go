package prompt

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingFrontMatter indicates the document did not start with a YAML fence.
	ErrMissingFrontMatter = errors.New("prompt: missing frontmatter")
	// ErrMalformedFrontMatter indicates the YAML block could not be parsed.
	ErrMalformedFrontMatter = errors.New("prompt: malformed frontmatter")
)

// Metadata identifies a rendered prompt on disk: which template produced it,
// which render invocation, and an integrity checksum over the body.
type Metadata struct {
	TemplateID string
	Version    string
	RenderID   string
	CreatedAt  time.Time
	Checksum   string
	Notes      map[string]string
}

// BodyChecksum computes the checksum recorded in frontmatter for a body.
func BodyChecksum(body []byte) string {
	sum := sha256.Sum256(body)
	return "sha256:" + hex.EncodeToString(sum[:])
}

// ParseFrontMatter extracts the metadata block and body from a document that
// starts with `---` YAML fences.
func ParseFrontMatter(content []byte) (Metadata, []byte, error) {
	if len(content) == 0 {
		return Metadata{}, nil, ErrMissingFrontMatter
	}
	normalized := normalizeNewlines(content)
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return Metadata{}, nil, ErrMissingFrontMatter
	}
	rest := normalized[4:]
	parts := bytes.SplitN(rest, []byte("\n---\n"), 2)
	if len(parts) < 2 {
		return Metadata{}, nil, ErrMalformedFrontMatter
	}
	var envelope forgeEnvelope
	if err := yaml.Unmarshal(parts[0], &envelope); err != nil {
		return Metadata{}, nil, fmt.Errorf("prompt: parse frontmatter: %w", err)
	}
	meta, err := envelope.toMetadata()
	if err != nil {
		return Metadata{}, nil, err
	}
	return meta, parts[1], nil
}

// WriteFrontMatter renders metadata + body with YAML fences. The checksum is
// computed from the body; any value already present in meta is replaced.
func WriteFrontMatter(meta Metadata, body []byte) ([]byte, error) {
	if meta.TemplateID == "" {
		return nil, fmt.Errorf("prompt: metadata missing template id")
	}
	meta.Checksum = BodyChecksum(body)
	envelope := forgeEnvelope{}
	envelope.fromMetadata(meta)
	data, err := yaml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("prompt: encode frontmatter: %w", err)
	}
	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(bytes.TrimRight(data, "\n"))
	buf.WriteString("\n---\n")
	buf.Write(body)
	return buf.Bytes(), nil
}

type forgeEnvelope struct {
	Promptforge forgeMetadata `yaml:"promptforge"`
}

type forgeMetadata struct {
	Template string            `yaml:"template"`
	Version  string            `yaml:"version"`
	Render   string            `yaml:"render,omitempty"`
	Created  string            `yaml:"created"`
	Checksum string            `yaml:"checksum,omitempty"`
	Notes    map[string]string `yaml:"notes,omitempty"`
}

func (e forgeEnvelope) toMetadata() (Metadata, error) {
	if e.Promptforge.Template == "" || e.Promptforge.Version == "" {
		return Metadata{}, ErrMalformedFrontMatter
	}
	created, err := parseTime(e.Promptforge.Created)
	if err != nil {
		return Metadata{}, fmt.Errorf("prompt: parse created timestamp: %w", err)
	}
	return Metadata{
		TemplateID: e.Promptforge.Template,
		Version:    e.Promptforge.Version,
		RenderID:   e.Promptforge.Render,
		CreatedAt:  created,
		Checksum:   e.Promptforge.Checksum,
		Notes:      cloneNotes(e.Promptforge.Notes),
	}, nil
}

func (e *forgeEnvelope) fromMetadata(meta Metadata) {
	e.Promptforge.Template = meta.TemplateID
	e.Promptforge.Version = meta.Version
	e.Promptforge.Render = meta.RenderID
	e.Promptforge.Created = meta.CreatedAt.UTC().Format(timeLayout)
	e.Promptforge.Checksum = meta.Checksum
	e.Promptforge.Notes = cloneNotes(meta.Notes)
}

func cloneNotes(notes map[string]string) map[string]string {
	if len(notes) == 0 {
		return nil
	}
	cloned := make(map[string]string, len(notes))
	for k, v := range notes {
		cloned[k] = v
	}
	return cloned
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

func parseTime(value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, fmt.Errorf("prompt: empty created timestamp")
	}
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func normalizeNewlines(content []byte) []byte {
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
}

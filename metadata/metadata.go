package metadata

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Formatted is implemented by every metadata descriptor.  It names the format of the metadata.
type Formatted interface {
	Format() *url.URL
}

// ByValue is metadata whose fields are carried inline, e.g. the rft.* keys of an OpenURL request
type ByValue struct {
	format *url.URL
	Fields url.Values
}

// NewByValue creates by-value metadata of the given format from those fields
// whose key starts with prefix.  The fields are copied.
func NewByValue(format *url.URL, prefix string, fields url.Values) *ByValue {
	md := &ByValue{
		format: format,
		Fields: make(url.Values),
	}

	for k, v := range fields {
		if strings.HasPrefix(k, prefix) {
			md.Fields[k] = append([]string(nil), v...)
		}
	}

	return md
}

// Format of the metadata
func (m *ByValue) Format() *url.URL {
	return m.format
}

func (m *ByValue) String() string {
	keys := make([]string, 0, len(m.Fields))
	for k := range m.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s {", m.format)
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(&sb, " %s=%s", k, strings.Join(m.Fields[k], "|"))
	}
	sb.WriteString(" }")
	return sb.String()
}

// byValueJSON is the serialized form of ByValue
type byValueJSON struct {
	Format string              `json:"format"`
	Fields map[string][]string `json:"fields"`
}

// Serialize writes by-value metadata as json
func (m *ByValue) Serialize(w io.Writer) error {
	var format string
	if m.format != nil {
		format = m.format.String()
	}

	return json.NewEncoder(w).Encode(byValueJSON{
		Format: format,
		Fields: m.Fields,
	})
}

// Parse parses a json byte stream, as produced by Serialize, into by-value metadata
func Parse(r io.Reader, m *ByValue) error {
	var raw byValueJSON

	err := json.NewDecoder(r).Decode(&raw)
	if err != nil {
		return errors.Wrap(err, "could not decode json metadata")
	}

	m.format, err = url.Parse(raw.Format)
	if err != nil {
		return errors.Wrapf(err, "bad metadata format %s", raw.Format)
	}

	m.Fields = url.Values(raw.Fields)
	if m.Fields == nil {
		m.Fields = make(url.Values)
	}

	return nil
}

// ByValueXML is metadata carried inline as an XML document
type ByValueXML struct {
	format   *url.URL
	Document []byte
}

// NewByValueXML creates by-value XML metadata of the given format.  The document must
// be well formed.
func NewByValueXML(format *url.URL, doc []byte) (*ByValueXML, error) {
	d := xml.NewDecoder(strings.NewReader(string(doc)))
	for {
		_, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "metadata document of format %s is not well formed", format)
		}
	}

	return &ByValueXML{
		format:   format,
		Document: doc,
	}, nil
}

// Format of the metadata
func (m *ByValueXML) Format() *url.URL {
	return m.format
}

// Decode unmarshals the document into v, as xml.Unmarshal would
func (m *ByValueXML) Decode(v interface{}) error {
	return errors.Wrapf(xml.Unmarshal(m.Document, v), "could not decode %s metadata", m.format)
}

func (m *ByValueXML) String() string {
	return string(m.Document)
}

// ByReference is metadata that lives elsewhere, at Ref
type ByReference struct {
	format *url.URL
	Ref    *url.URL
}

// NewByReference creates by-reference metadata of the given format
func NewByReference(format, ref *url.URL) *ByReference {
	return &ByReference{
		format: format,
		Ref:    ref,
	}
}

// Format of the metadata
func (m *ByReference) Format() *url.URL {
	return m.format
}

func (m *ByReference) String() string {
	return fmt.Sprintf("%s <%s>", m.format, m.Ref)
}

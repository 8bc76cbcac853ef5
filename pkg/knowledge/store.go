// Package knowledge stores organization records in a flat JSON document.
//
// The backing file maps org_id to an Organization. Writes touch only the key being
// written; other records are carried through byte for byte. There is no locking:
// two processes writing at once race and the last write wins.
package knowledge

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/nikogura/jd-agent/pkg/errs"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

const (
	// OrganizationsFile is the name of the organization document inside the store directory.
	OrganizationsFile = "organizations.json"
	// TemplatesFile is the name of the read-only style template document.
	TemplatesFile = "job_templates.json"
)

// Fields that UpdateField may replace.
//
//nolint:gochecknoglobals // Fixed record schema
var updatableFields = map[string]bool{
	"company_info":             true,
	"culture":                  true,
	"benefits":                 true,
	"salary_ranges":            true,
	"departments":              true,
	"tech_stack":               true,
	"tools_platforms":          true,
	"certifications_preferred": true,
}

// Store reads and writes organization records.
type Store struct {
	dir               string
	organizationsPath string
	templatesPath     string
	now               func() time.Time
}

// NewStore opens the store in dir, creating the directory and an empty document on first use.
func NewStore(dir string) (store *Store, err error) {
	if dir == "" {
		err = errs.Configuration("knowledge base directory is required", nil)
		return store, err
	}

	store = &Store{
		dir:               dir,
		organizationsPath: filepath.Join(dir, OrganizationsFile),
		templatesPath:     filepath.Join(dir, TemplatesFile),
		now:               time.Now,
	}

	err = store.initialize()
	if err != nil {
		return store, err
	}

	return store, err
}

// Path returns the location of the organization document.
func (s *Store) Path() (path string) {
	path = s.organizationsPath
	return path
}

func (s *Store) initialize() (err error) {
	err = os.MkdirAll(s.dir, 0750)
	if err != nil {
		err = errs.Persistence("failed to create knowledge base directory: "+s.dir, err)
		return err
	}

	_, err = os.Stat(s.organizationsPath)
	if err == nil {
		return err
	}
	if !os.IsNotExist(err) {
		err = errs.Persistence("failed to stat organizations file", err)
		return err
	}

	err = s.writeDocument([]byte("{}"))
	return err
}

// Put stores org under orgID, replacing any previous record and stamping LastUpdated.
func (s *Store) Put(orgID string, org Organization) (stored Organization, err error) {
	err = validateID(orgID)
	if err != nil {
		return stored, err
	}

	err = org.Validate()
	if err != nil {
		err = errs.Validation("invalid organization record for "+orgID, "", err)
		return stored, err
	}

	org.LastUpdated = s.now().Format(time.RFC3339Nano)

	var record []byte
	record, err = json.Marshal(org)
	if err != nil {
		err = errs.Persistence("failed to encode organization record", err)
		return stored, err
	}

	var doc []byte
	doc, err = s.readDocument()
	if err != nil {
		return stored, err
	}

	doc, err = sjson.SetRawBytes(doc, escapeKey(orgID), record)
	if err != nil {
		err = errs.Persistence("failed to set organization "+orgID, err)
		return stored, err
	}

	err = s.writeDocument(doc)
	if err != nil {
		return stored, err
	}

	stored = org
	return stored, err
}

// Get returns the record stored under orgID. A missing id is not an error.
func (s *Store) Get(orgID string) (org Organization, found bool, err error) {
	if strings.TrimSpace(orgID) == "" {
		return org, found, err
	}

	var doc []byte
	doc, err = s.readDocument()
	if err != nil {
		return org, found, err
	}

	result := gjson.GetBytes(doc, escapeKey(orgID))
	if !result.Exists() {
		return org, found, err
	}

	err = json.Unmarshal([]byte(result.Raw), &org)
	if err != nil {
		err = errs.Persistence("corrupt organization record: "+orgID, err)
		return org, found, err
	}

	found = true
	return org, found, err
}

// ListIDs returns every stored organization id, sorted.
func (s *Store) ListIDs() (ids []string, err error) {
	var doc []byte
	doc, err = s.readDocument()
	if err != nil {
		return ids, err
	}

	ids = make([]string, 0)
	gjson.ParseBytes(doc).ForEach(func(key, _ gjson.Result) (more bool) {
		ids = append(ids, key.String())
		more = true
		return more
	})
	sort.Strings(ids)

	return ids, err
}

// Delete removes orgID. deleted is false when there was nothing to remove.
func (s *Store) Delete(orgID string) (deleted bool, err error) {
	var doc []byte
	doc, err = s.readDocument()
	if err != nil {
		return deleted, err
	}

	key := escapeKey(orgID)
	if !gjson.GetBytes(doc, key).Exists() {
		return deleted, err
	}

	doc, err = sjson.DeleteBytes(doc, key)
	if err != nil {
		err = errs.Persistence("failed to delete organization "+orgID, err)
		return deleted, err
	}

	err = s.writeDocument(doc)
	if err != nil {
		return deleted, err
	}

	deleted = true
	return deleted, err
}

// UpdateField replaces one top-level field of an existing record with the JSON in value.
func (s *Store) UpdateField(orgID, field string, value []byte) (updated bool, err error) {
	if !updatableFields[field] {
		err = errs.Validation("unknown organization field: "+field, "", nil)
		return updated, err
	}

	if !gjson.ValidBytes(value) {
		err = errs.Validation("value for "+field+" is not valid JSON", string(value), nil)
		return updated, err
	}

	var doc []byte
	doc, err = s.readDocument()
	if err != nil {
		return updated, err
	}

	key := escapeKey(orgID)
	if !gjson.GetBytes(doc, key).Exists() {
		return updated, err
	}

	doc, err = sjson.SetRawBytes(doc, key+"."+field, value)
	if err != nil {
		err = errs.Persistence("failed to update "+field+" for "+orgID, err)
		return updated, err
	}

	doc, err = sjson.SetBytes(doc, key+".last_updated", s.now().Format(time.RFC3339Nano))
	if err != nil {
		err = errs.Persistence("failed to stamp "+orgID, err)
		return updated, err
	}

	// Refuse to write a record the rest of the system could not read back.
	var org Organization
	err = json.Unmarshal([]byte(gjson.GetBytes(doc, key).Raw), &org)
	if err != nil {
		err = errs.Validation("value for "+field+" does not match the record schema", string(value), err)
		return updated, err
	}
	err = org.Validate()
	if err != nil {
		err = errs.Validation("update would leave "+orgID+" invalid", string(value), err)
		return updated, err
	}

	err = s.writeDocument(doc)
	if err != nil {
		return updated, err
	}

	updated = true
	return updated, err
}

// Export writes the record for orgID to path as indented JSON.
func (s *Store) Export(orgID, path string) (found bool, err error) {
	var org Organization
	org, found, err = s.Get(orgID)
	if err != nil || !found {
		return found, err
	}

	var data []byte
	data, err = json.MarshalIndent(org, "", "  ")
	if err != nil {
		err = errs.Persistence("failed to encode organization "+orgID, err)
		return found, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errs.Persistence("failed to write export file: "+path, err)
		return found, err
	}

	return found, err
}

// Import decodes a JSON or YAML organization document and stores it under orgID.
func (s *Store) Import(orgID string, data []byte) (stored Organization, err error) {
	var org Organization
	org, err = DecodeOrganization(data)
	if err != nil {
		return stored, err
	}

	stored, err = s.Put(orgID, org)
	return stored, err
}

// DecodeOrganization parses an organization document. JSON is tried first, then YAML.
func DecodeOrganization(data []byte) (org Organization, err error) {
	jsonData := data
	if !json.Valid(data) {
		var generic map[string]interface{}
		err = yaml.Unmarshal(data, &generic)
		if err != nil {
			err = errs.Validation("organization document is neither JSON nor YAML", string(data), err)
			return org, err
		}

		jsonData, err = json.Marshal(generic)
		if err != nil {
			err = errs.Validation("organization document could not be converted from YAML", string(data), err)
			return org, err
		}
	}

	err = json.Unmarshal(jsonData, &org)
	if err != nil {
		err = errs.Validation("organization document does not match the record schema", string(data), err)
		return org, err
	}

	return org, err
}

func (s *Store) readDocument() (doc []byte, err error) {
	doc, err = os.ReadFile(s.organizationsPath)
	if err != nil {
		if os.IsNotExist(err) {
			doc = []byte("{}")
			err = nil
			return doc, err
		}
		err = errs.Persistence("failed to read organizations file: "+s.organizationsPath, err)
		return doc, err
	}

	if len(strings.TrimSpace(string(doc))) == 0 {
		doc = []byte("{}")
		return doc, err
	}

	if !gjson.ValidBytes(doc) || !gjson.ParseBytes(doc).IsObject() {
		err = errs.Persistence("organizations file is not a JSON object: "+s.organizationsPath, nil)
		return doc, err
	}

	return doc, err
}

func (s *Store) writeDocument(doc []byte) (err error) {
	err = os.WriteFile(s.organizationsPath, pretty.Pretty(doc), 0600)
	if err != nil {
		err = errs.Persistence("failed to write organizations file: "+s.organizationsPath, err)
		return err
	}
	return err
}

func validateID(orgID string) (err error) {
	if strings.TrimSpace(orgID) == "" {
		err = errs.Validation("organization id is required", "", nil)
		return err
	}
	return err
}

// escapeKey turns an org id into a gjson/sjson path that addresses it literally.
// Every ASCII punctuation character except '_' and '-' is escaped.
func escapeKey(key string) (path string) {
	var b strings.Builder
	for _, r := range key {
		if needsEscape(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	path = b.String()
	return path
}

func needsEscape(r rune) (escape bool) {
	switch {
	case r <= ' ' || r > '~':
		return escape
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return escape
	case r == '_' || r == '-':
		return escape
	}
	escape = true
	return escape
}

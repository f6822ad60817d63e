package registry

import (
	"fmt"
	"reflect"
	"strings"
)

// Kind tells the engine how to validate, render and export a column.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindMoney
	KindDate
	KindFile
)

type Column struct {
	Name     string // db/json name
	Label    string // export header; Name when empty
	Kind     Kind
	Required bool
	Search   bool // participates in the substring filter
}

func (c Column) label() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Name
}

// Definition describes one asset category to the generic CRUD engine. The
// primary key never appears here: it is detected from the model's first
// db tag carrying the conventional id_ prefix.
type Definition struct {
	Resource   string // route segment and ACL resource name
	Table      string
	KeyColumn  string // registration column used for lookups and QR content
	ParentPath string // when set, GET /{resource}/{parentPath}/:key lists every row for the key
	Columns    []Column
	QRCode     bool // generate a QR image on create
}

func (d Definition) column(name string) (Column, bool) {
	for _, col := range d.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// structMeta caches the db-tag layout of a model struct.
type structMeta struct {
	typ    reflect.Type
	fields map[string]int // db tag -> field index
	idCol  string
}

func newStructMeta[T any]() (structMeta, error) {
	var zero T
	t := reflect.TypeOf(zero)
	if t.Kind() != reflect.Struct {
		return structMeta{}, fmt.Errorf("registry model must be a struct, got %s", t.Kind())
	}

	m := structMeta{typ: t, fields: make(map[string]int, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		tag := strings.Split(t.Field(i).Tag.Get("db"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}
		m.fields[tag] = i
		if m.idCol == "" && strings.HasPrefix(tag, "id_") {
			m.idCol = tag
		}
	}

	if m.idCol == "" {
		return structMeta{}, fmt.Errorf("model %s has no id_-prefixed column", t.Name())
	}
	return m, nil
}

func (m structMeta) fieldValue(item reflect.Value, col string) (reflect.Value, bool) {
	idx, ok := m.fields[col]
	if !ok {
		return reflect.Value{}, false
	}
	return item.Field(idx), true
}

func (m structMeta) getString(item interface{}, col string) string {
	v, ok := m.fieldValue(reflect.ValueOf(item).Elem(), col)
	if !ok || v.Kind() != reflect.String {
		return ""
	}
	return v.String()
}

func (m structMeta) setString(item interface{}, col string, value string) {
	v, ok := m.fieldValue(reflect.ValueOf(item).Elem(), col)
	if ok && v.Kind() == reflect.String {
		v.SetString(value)
	}
}

func (m structMeta) getID(item interface{}) int {
	v, ok := m.fieldValue(reflect.ValueOf(item).Elem(), m.idCol)
	if !ok {
		return 0
	}
	return int(v.Int())
}

func (m structMeta) setID(item interface{}, id int) {
	v, ok := m.fieldValue(reflect.ValueOf(item).Elem(), m.idCol)
	if ok {
		v.SetInt(int64(id))
	}
}

func (m structMeta) isZero(item interface{}, col string) bool {
	v, ok := m.fieldValue(reflect.ValueOf(item).Elem(), col)
	if !ok {
		return true
	}
	return v.IsZero()
}

// render returns the export/search representation of a column value. Empty
// values render as the dash placeholder.
func (m structMeta) render(item interface{}, col string) string {
	v, ok := m.fieldValue(reflect.ValueOf(item).Elem(), col)
	if !ok || v.IsZero() {
		return "-"
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		if str := s.String(); str != "" {
			return str
		}
		return "-"
	}
	return fmt.Sprintf("%v", v.Interface())
}

package store

import (
	"context"

	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	llmEventsTable   = "llm_request_events"
	gradeEventsTable = "grade_events"
)

// Every event table starts with a row id, the global sequence number and
// a UTC timestamp.
func eventTable(name string, fields []*schema.Column, indexed ...string) *schema.Table {
	cols := append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}, fields...)

	t := &schema.Table{
		Name:       name,
		Columns:    cols,
		PrimaryKey: []*schema.Column{cols[0]},
	}
	for _, c := range cols {
		if c.Name == "timestamp" || contains(indexed, c.Name) {
			t.Indexes = append(t.Indexes, &schema.Index{
				Name:    name + "_" + c.Name,
				Columns: []*schema.Column{c},
			})
		}
	}
	return t
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func tables() []*schema.Table {
	llm := eventTable(llmEventsTable, []*schema.Column{
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}, "purpose", "success")

	grades := eventTable(gradeEventsTable, []*schema.Column{
		{Name: "problem_id", Type: field.TypeString},
		{Name: "module", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "fallback", Type: field.TypeBool},
		{Name: "fallback_reason", Type: field.TypeString, Default: ""},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
	}, "module")

	return []*schema.Table{llm, grades}
}

// migrate creates or updates the event tables with ent's migration engine.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables()...)
}

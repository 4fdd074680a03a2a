package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnMarker(t *testing.T) {
	tests := []struct {
		name string
		col  Column
		want Marker
	}{
		{"primary", Column{Primary: true}, MarkerPrimary},
		{"nullable primary", Column{Primary: true, Nullable: true}, MarkerPrimary},
		{"nullable", Column{Nullable: true}, MarkerNullable},
		{"not null", Column{}, MarkerNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.col.Marker())
		})
	}
}

func TestLookups(t *testing.T) {
	s := &Schema{Tables: []Table{
		{
			Name: "members",
			Columns: []Column{
				{Name: "team_id", Primary: true},
				{Name: "note", Nullable: true},
				{Name: "user_id", Primary: true},
			},
			ForeignKeys: []ForeignKey{
				{SourceTable: "members", SourceColumn: "team_id", TargetTable: "teams"},
				{SourceTable: "members", SourceColumn: "user_id", TargetTable: "users"},
			},
		},
		{Name: "teams"},
	}}

	members, ok := s.Table("members")
	require.True(t, ok)
	assert.Equal(t, []string{"team_id", "user_id"}, members.PrimaryKeys())

	note, ok := members.Column("note")
	require.True(t, ok)
	assert.True(t, note.Nullable)

	_, ok = members.Column("missing")
	assert.False(t, ok)

	teams, ok := s.Table("teams")
	require.True(t, ok)
	assert.Empty(t, teams.PrimaryKeys())

	_, ok = s.Table("users")
	assert.False(t, ok)

	assert.Equal(t, 2, s.ForeignKeyCount())
}

package panel

import (
	"strings"
	"testing"
)

func testClients() []ClientRecord {
	return []ClientRecord{
		{RUT: "12345678-5", BusinessName: "Comercial Andina", Active: true},
		{RUT: "23423420-K", BusinessName: "Transportes del Sur", Phone: "+56 9 1234 5678", Active: false},
	}
}

func TestRenderEmptySnapshotYieldsSinglePlaceholderRow(t *testing.T) {
	r := NewRenderer(ClientSchema(), NewGate())

	markup := r.Render(nil, "admin")

	if got := strings.Count(markup, "<tr"); got != 1 {
		t.Fatalf("row count = %d, want exactly 1 placeholder row: %s", got, markup)
	}
	if !strings.Contains(markup, "No hay registros") {
		t.Errorf("placeholder text missing: %s", markup)
	}
	if !strings.Contains(markup, `colspan="8"`) {
		t.Errorf("placeholder should span all columns: %s", markup)
	}
}

func TestRenderRowsCarryDataKeysNotInlineHandlers(t *testing.T) {
	r := NewRenderer(ClientSchema(), NewGate())

	markup := r.Render(testClients(), "admin")

	if strings.Contains(markup, "onclick") {
		t.Error("markup must not embed inline handlers")
	}
	if !strings.Contains(markup, `data-key="12345678-5"`) {
		t.Errorf("rows should carry the normalized key as a data attribute: %s", markup)
	}
	if !strings.Contains(markup, "12.345.678-5") {
		t.Errorf("displayed key should be formatted: %s", markup)
	}
}

func TestRenderStatusBadges(t *testing.T) {
	r := NewRenderer(ClientSchema(), NewGate())

	markup := r.Render(testClients(), "consulta")

	if !strings.Contains(markup, ">Activo<") || !strings.Contains(markup, ">Inactivo<") {
		t.Errorf("both status badges expected: %s", markup)
	}
}

func TestRenderActionSetFollowsRole(t *testing.T) {
	r := NewRenderer(ClientSchema(), NewGate())
	records := testClients()[:1]

	admin := r.Render(records, "admin")
	for _, class := range []string{"btn-action-view", "btn-action-edit", "btn-action-toggle", "btn-action-delete"} {
		if !strings.Contains(admin, class) {
			t.Errorf("admin markup missing %s", class)
		}
	}

	consulta := r.Render(records, "consulta")
	if !strings.Contains(consulta, "btn-action-view") {
		t.Error("consulta markup missing the view control")
	}
	for _, class := range []string{"btn-action-edit", "btn-action-toggle", "btn-action-delete"} {
		if strings.Contains(consulta, class) {
			t.Errorf("consulta markup must not contain %s", class)
		}
	}

	usuario := r.Render(records, "usuario")
	if strings.Contains(usuario, "btn-action-delete") {
		t.Error("usuario markup must not contain the delete control")
	}
}

func TestRenderAbsentFieldsShowDash(t *testing.T) {
	r := NewRenderer(ClientSchema(), NewGate())

	markup := r.Render([]ClientRecord{{RUT: "12345678-5", BusinessName: "Solo Razon", Active: true}}, "consulta")

	if !strings.Contains(markup, "<td>-</td>") {
		t.Errorf("absent display fields should render as a dash: %s", markup)
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	r := NewRenderer(ProfileSchema(), NewGate())
	records := []Profile{{Username: "ana", Name: "Ana Rojas", Role: "admin", Active: true, CreatedAt: "2024-05-01 10:30:00"}}

	first := r.Render(records, "admin")
	second := r.Render(records, "admin")
	if first != second {
		t.Error("same input should produce identical markup")
	}
	if !strings.Contains(first, ">2024-05-01<") {
		t.Errorf("created-at column should display only the date part: %s", first)
	}
}

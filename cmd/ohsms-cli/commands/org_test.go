package commands

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/ohsms/dtos"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v2"
)

func TestPrintOrgTree(t *testing.T) {
	t.Run("should print one row per node", func(t *testing.T) {
		var out bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&out)

		printOrgTree(cmd, []dtos.BranchDTO{{
			ID:   uuid.New(),
			Code: "hamburg",
			Departments: []dtos.DepartmentDTO{{
				ID:       uuid.New(),
				Code:     "logistics",
				Sections: []dtos.SectionDTO{{ID: uuid.New(), Code: "cold-storage"}},
			}},
		}})

		assert.Contains(t, out.String(), "hamburg")
		assert.Contains(t, out.String(), "logistics")
		assert.Contains(t, out.String(), "cold-storage")
	})
}

func TestOrgImportFormat(t *testing.T) {
	t.Run("should read the documented file format", func(t *testing.T) {
		raw := []byte(`
branches:
  - name: Hamburg
    departments:
      - name: Logistics
        sections: [Cold Storage, Loading Dock]
`)
		var tree dtos.OrgTreeImport
		assert.NoError(t, yaml.UnmarshalStrict(raw, &tree))
		assert.Equal(t, "Hamburg", tree.Branches[0].Name)
		assert.Equal(t, []string{"Cold Storage", "Loading Dock"}, tree.Branches[0].Departments[0].Sections)
	})

	t.Run("should reject unknown keys", func(t *testing.T) {
		var tree dtos.OrgTreeImport
		assert.Error(t, yaml.UnmarshalStrict([]byte("branches:\n  - name: Hamburg\n    plants: []\n"), &tree))
	})
}

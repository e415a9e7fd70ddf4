package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngoccc0/dreamland-engine-sub002/internal/registry"
	"github.com/ngoccc0/dreamland-engine-sub002/internal/world"
)

func conditionChunk() *world.Chunk {
	return &world.Chunk{Attributes: world.Attributes{
		VegetationDensity: 70,
		Moisture:          40,
		LightLevel:        -20,
		SoilType:          "dirt",
	}}
}

func TestCheckConditionsNilAlwaysPasses(t *testing.T) {
	assert.True(t, CheckConditions(nil, conditionChunk()))
}

func TestCheckConditionsSoilAllowList(t *testing.T) {
	ch := conditionChunk()

	assert.True(t, CheckConditions(&registry.Conditions{SoilTypes: []string{"clay", "dirt"}}, ch))
	assert.False(t, CheckConditions(&registry.Conditions{SoilTypes: []string{"sand"}}, ch))
}

func TestCheckConditionsBoundsPerSide(t *testing.T) {
	ch := conditionChunk()

	tests := []struct {
		name   string
		ranges map[string]registry.Bound
		want   bool
	}{
		{"inside both sides", map[string]registry.Bound{"moisture": registry.Between(30, 50)}, true},
		{"below min", map[string]registry.Bound{"moisture": registry.AtLeast(60)}, false},
		{"above max", map[string]registry.Bound{"moisture": registry.AtMost(30)}, false},
		{"min only satisfied", map[string]registry.Bound{"vegetationDensity": registry.AtLeast(50)}, true},
		{"max only satisfied", map[string]registry.Bound{"vegetationDensity": registry.AtMost(90)}, true},
		{"negative light bound", map[string]registry.Bound{"lightLevel": registry.AtMost(-10)}, true},
		{"unbounded sides", map[string]registry.Bound{"moisture": {}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckConditions(&registry.Conditions{Ranges: tt.ranges}, ch)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckConditionsSkipsUnknownKeys(t *testing.T) {
	ch := conditionChunk()
	cond := &registry.Conditions{Ranges: map[string]registry.Bound{
		"crystalResonance": registry.AtLeast(9000),
		"moisture":         registry.Between(30, 50),
	}}

	assert.True(t, CheckConditions(cond, ch), "unknown attribute keys must not reject the chunk")
}

func TestCheckConditionsCombineSoilAndRanges(t *testing.T) {
	ch := conditionChunk()
	cond := &registry.Conditions{
		SoilTypes: []string{"dirt"},
		Ranges:    map[string]registry.Bound{"moisture": registry.AtLeast(60)},
	}

	assert.False(t, CheckConditions(cond, ch), "a failing range must reject even with matching soil")
}

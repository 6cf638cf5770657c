package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biometa-converter/convert"
	"biometa-converter/document"
	"biometa-converter/schema"
)

const testTableYAML = `
Capillary Position:
  method_specific_parameters:
    measurements[]:
      position: "#_insert"
MST-Power:
  method_specific_parameters:
    ir_mst_laser_power: "#_insert"
Time [s]:
  method_specific_parameters:
    measurements[]:
      measured_data:
        x_data:
          values: "#_insert"
          unit: seconds
`

func loadTestTable(t *testing.T) *schema.Table {
	t.Helper()

	table, err := schema.Load([]byte(testTableYAML))
	require.NoError(t, err)

	return table
}

func capillary(position int64, power string, trace []float64) convert.Measurement {
	return convert.NewMeasurement(
		convert.Field{Name: "Capillary Position", Value: document.NewInt(position)},
		convert.Field{Name: "MST-Power", Value: document.NewString(power)},
		convert.Field{Name: "Time [s]", Value: document.NewFloatList(trace)},
	)
}

func TestProject(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	frag, ok := convert.Project(table, convert.Field{
		Name:  "MST-Power",
		Value: document.NewString("20%"),
	})
	require.True(t, ok)
	assert.Equal(t, `{"method_specific_parameters":{"ir_mst_laser_power":"20%"}}`, frag.JSON())

	_, ok = convert.Project(table, convert.Field{
		Name:  "Comment",
		Value: document.NewString("run 4, cold room"),
	})
	assert.False(t, ok)
}

func TestComposeMeasurementDropsUnmappedFields(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	m := capillary(1, "20%", []float64{0, 1.1})
	m.Add("Comment", document.NewString("not in the table"))

	record, err := convert.ComposeMeasurement(table, m)
	require.NoError(t, err)

	want := `{"method_specific_parameters":{"measurements[]":{"position":1,` +
		`"measured_data":{"x_data":{"values":[0,1.1],"unit":"seconds"}}},` +
		`"ir_mst_laser_power":"20%"}}`
	assert.Equal(t, want, record.JSON())
}

func TestUnmappedFields(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	m := convert.NewMeasurement(
		convert.Field{Name: "Comment", Value: document.NewString("x")},
		convert.Field{Name: "Capillary Position", Value: document.NewInt(1)},
		convert.Field{Name: "Operator", Value: document.NewString("y")},
	)

	assert.Equal(t, []string{"Comment", "Operator"}, convert.UnmappedFields(table, m))
	assert.Nil(t, convert.UnmappedFields(table, convert.NewMeasurement(
		convert.Field{Name: "Capillary Position", Value: document.NewInt(2)},
	)))
}

func TestToJSON(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	measurements := []convert.Measurement{
		capillary(1, "20%", []float64{0, 1.1}),
		capillary(2, "20%", []float64{0, 1.1}),
	}

	got, err := convert.ToJSON(table, measurements)
	require.NoError(t, err)

	want := `{
  "method_specific_parameters": {
    "measurements": [
      {
        "position": 1,
        "measured_data": {
          "x_data": {
            "values": [
              0,
              1.1
            ],
            "unit": "seconds"
          }
        }
      },
      {
        "position": 2,
        "measured_data": {
          "x_data": {
            "values": [
              0,
              1.1
            ],
            "unit": "seconds"
          }
        }
      }
    ],
    "ir_mst_laser_power": "20%"
  }
}`
	assert.Equal(t, want, got)
}

func TestToJSONIsDeterministic(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	measurements := []convert.Measurement{
		capillary(1, "40%", []float64{0, 0.5, 1}),
		capillary(2, "40%", []float64{0, 0.5, 1}),
		capillary(3, "40%", []float64{0, 0.5, 1}),
	}

	first, err := convert.ToJSON(table, measurements)
	require.NoError(t, err)

	second, err := convert.ToJSON(table, measurements)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestToJSONSurfacesLaserPowerDisagreement(t *testing.T) {
	t.Parallel()

	table := loadTestTable(t)

	measurements := []convert.Measurement{
		capillary(1, "20%", []float64{0, 1.1}),
		capillary(2, "40%", []float64{0, 1.1}),
	}

	_, err := convert.ToJSON(table, measurements)

	require.ErrorIs(t, err, convert.ErrAggregateConflict)
	assert.Contains(t, err.Error(), "ir_mst_laser_power")
}

func TestToJSONSurfacesDuplicateTargets(t *testing.T) {
	t.Parallel()

	table, err := schema.NewTable(map[string]document.Value{
		"ActualTime": document.NewMapping(document.KV("time_length", document.NewString(schema.Placeholder))),
		"StepTime":   document.NewMapping(document.KV("time_length", document.NewString(schema.Placeholder))),
	})
	require.NoError(t, err)

	m := convert.NewMeasurement(
		convert.Field{Name: "ActualTime", Value: document.NewFloat(60)},
		convert.Field{Name: "StepTime", Value: document.NewFloat(60)},
	)

	_, err = convert.ToJSON(table, []convert.Measurement{m})

	require.ErrorIs(t, err, convert.ErrRecordConflict)
	assert.Contains(t, err.Error(), "time_length")
}

func TestToJSONWithEagerNormalization(t *testing.T) {
	t.Parallel()

	table, err := schema.NewTable(map[string]document.Value{
		"StepName": document.NewMapping(document.KV("method_specific_parameters", document.NewMapping(
			document.KV("measurement_protocol[]", document.NewMapping(
				document.KV("name", document.NewString(schema.Placeholder))))))),
	})
	require.NoError(t, err)

	single := []convert.Measurement{convert.NewMeasurement(
		convert.Field{Name: "StepName", Value: document.NewString("Baseline")},
	)}

	lazy, err := convert.ToJSON(table, single)
	require.NoError(t, err)
	assert.Contains(t, lazy, `"measurement_protocol[]"`)

	eager, err := convert.ToJSONWith(convert.Config{Normalize: convert.NormalizeEager}, table, single)
	require.NoError(t, err)
	assert.NotContains(t, eager, `"measurement_protocol[]"`)
	assert.Contains(t, eager, `"measurement_protocol": [`)
}

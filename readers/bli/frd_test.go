package bli

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biometa-converter/convert"
)

const (
	testRunID  = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	otherRunID = "6ba7b811-9dad-11d1-80b4-00c04fd430c8"
)

const frdTemplate = `<?xml version="1.0" encoding="utf-8"?>
<ExperimentResults>
  <ExperimentInfo>
    <RunID>%s</RunID>
    <InstrumentName>Octet RED96</InstrumentName>
  </ExperimentInfo>
  <KineticsData>
    <Step>
      <StepName>Baseline</StepName>
      <StepType>BASELINE</StepType>
      <AssayXData Size="8">%s</AssayXData>
      <AssayYData Size="8">%s</AssayYData>
      <CommonData>
        <FlowRate>1000</FlowRate>
        <StartTime>0</StartTime>
        <ActualTime>60</ActualTime>
        <Temperature>25</Temperature>
      </CommonData>
    </Step>
    <Step>
      <StepName>Loading</StepName>
      <StepType>LOADING</StepType>
      <AssayXData Size="8">%s</AssayXData>
      <AssayYData Size="8">%s</AssayYData>
      <CommonData>
        <FlowRate>1000</FlowRate>
        <StartTime>60</StartTime>
        <ActualTime>120</ActualTime>
        <Temperature>25</Temperature>
      </CommonData>
    </Step>
  </KineticsData>
</ExperimentResults>`

// b64Floats packs values the way the instrument writes trace payloads,
// wrapped with a newline to exercise whitespace stripping.
func b64Floats(values ...float32) string {
	blob := make([]byte, 0, len(values)*4)
	for _, v := range values {
		blob = binary.LittleEndian.AppendUint32(blob, math.Float32bits(v))
	}

	enc := base64.StdEncoding.EncodeToString(blob)
	if len(enc) > 8 {
		enc = enc[:8] + "\n" + enc[8:]
	}

	return enc
}

// writeFRD writes a two-step sensor file. yBase offsets the response
// traces so sensors written with different bases stay distinguishable.
func writeFRD(t *testing.T, dir, name, runID string, yBase float32) string {
	t.Helper()

	content := fmt.Sprintf(frdTemplate,
		runID,
		b64Floats(0, 0.5), b64Floats(yBase, yBase+0.5),
		b64Floats(60, 60.5), b64Floats(yBase+1, yBase+1.5))

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func fieldNames(m convert.Measurement) []string {
	names := make([]string, 0, m.Len())
	for _, f := range m.Fields() {
		names = append(names, f.Name)
	}

	return names
}

func TestSensorMeasurements(t *testing.T) {
	path := writeFRD(t, t.TempDir(), "sensor1.frd", testRunID, 100)

	file, err := readFRD(path)
	require.NoError(t, err)
	assert.Equal(t, testRunID, file.ExperimentInfo.RunID)

	measurements, err := sensorMeasurements(file)
	require.NoError(t, err)
	require.Len(t, measurements, 2)

	first := measurements[0]
	assert.Equal(t, []string{
		"StepName",
		"StepType",
		"AssayXData",
		"AssayYData",
		"FlowRate",
		"StartTime",
		"ActualTime",
		"Temperature",
	}, fieldNames(first))

	name, ok := first.Get("StepName")
	require.True(t, ok)
	assert.Equal(t, "Baseline", name.StringVal())

	kind, ok := first.Get("StepType")
	require.True(t, ok)
	assert.Equal(t, "BASELINE", kind.StringVal())

	xs, ok := first.Get("AssayXData")
	require.True(t, ok)
	assert.Equal(t, "[0,0.5]", xs.JSON())

	ys, ok := first.Get("AssayYData")
	require.True(t, ok)
	assert.Equal(t, "[100,100.5]", ys.JSON())

	rate, ok := first.Get("FlowRate")
	require.True(t, ok)
	assert.Equal(t, 1000.0, rate.FloatVal())

	start, ok := first.Get("StartTime")
	require.True(t, ok)
	assert.Equal(t, 0.0, start.FloatVal())

	length, ok := first.Get("ActualTime")
	require.True(t, ok)
	assert.Equal(t, 60.0, length.FloatVal())

	second := measurements[1]

	name, ok = second.Get("StepName")
	require.True(t, ok)
	assert.Equal(t, "Loading", name.StringVal())

	xs, ok = second.Get("AssayXData")
	require.True(t, ok)
	assert.Equal(t, "[60,60.5]", xs.JSON())

	ys, ok = second.Get("AssayYData")
	require.True(t, ok)
	assert.Equal(t, "[101,101.5]", ys.JSON())

	start, ok = second.Get("StartTime")
	require.True(t, ok)
	assert.Equal(t, 60.0, start.FloatVal())
}

func TestBase64Floats(t *testing.T) {
	values, err := base64Floats(b64Floats(0, 1, 2.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2.5}, values)

	_, err = base64Floats("not base64!")
	assert.ErrorContains(t, err, "failed to decode base64 payload")
}

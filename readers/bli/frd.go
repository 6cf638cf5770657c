package bli

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"os"
	"strings"

	"biometa-converter/convert"
	"biometa-converter/document"
	"biometa-converter/readers"
)

// The .frd layout this decoder understands. Raw traces are base64
// wrapped at a fixed width inside AssayXData/AssayYData; CommonData
// groups the step parameters shared by every trace of the step.
type frdFile struct {
	XMLName        xml.Name    `xml:"ExperimentResults"`
	ExperimentInfo frdInfo     `xml:"ExperimentInfo"`
	KineticsData   frdKinetics `xml:"KineticsData"`
}

type frdInfo struct {
	RunID string `xml:"RunID"`
}

type frdKinetics struct {
	Steps []frdStep `xml:"Step"`
}

type frdStep struct {
	StepName   string     `xml:"StepName"`
	StepType   string     `xml:"StepType"`
	AssayXData frdPayload `xml:"AssayXData"`
	AssayYData frdPayload `xml:"AssayYData"`
	Common     frdCommon  `xml:"CommonData"`
}

type frdPayload struct {
	Text string `xml:",chardata"`
}

type frdCommon struct {
	FlowRate    *float64 `xml:"FlowRate"`
	StartTime   *float64 `xml:"StartTime"`
	ActualTime  *float64 `xml:"ActualTime"`
	Temperature *float64 `xml:"Temperature"`
}

func readFRD(path string) (frdFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return frdFile{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file frdFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return frdFile{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return file, nil
}

// sensorMeasurements turns each kinetic step of one sensor file into a
// measurement: the step's own fields first, then the hoisted CommonData
// block, the grouping order the vendor writes.
func sensorMeasurements(f frdFile) ([]convert.Measurement, error) {
	measurements := make([]convert.Measurement, 0, len(f.KineticsData.Steps))

	for i, step := range f.KineticsData.Steps {
		xs, err := base64Floats(step.AssayXData.Text)
		if err != nil {
			return nil, fmt.Errorf("step %d: bad AssayXData: %w", i, err)
		}

		ys, err := base64Floats(step.AssayYData.Text)
		if err != nil {
			return nil, fmt.Errorf("step %d: bad AssayYData: %w", i, err)
		}

		m := convert.NewMeasurement(
			convert.Field{Name: "StepName", Value: document.NewString(step.StepName)},
			convert.Field{Name: "StepType", Value: document.NewString(step.StepType)},
			convert.Field{Name: "AssayXData", Value: document.NewFloatList(xs)},
			convert.Field{Name: "AssayYData", Value: document.NewFloatList(ys)},
		)

		addCommon(&m, step.Common)

		measurements = append(measurements, m)
	}

	return measurements, nil
}

func addCommon(m *convert.Measurement, c frdCommon) {
	if c.FlowRate != nil {
		m.Add("FlowRate", document.NewFloat(*c.FlowRate))
	}

	if c.StartTime != nil {
		m.Add("StartTime", document.NewFloat(*c.StartTime))
	}

	if c.ActualTime != nil {
		m.Add("ActualTime", document.NewFloat(*c.ActualTime))
	}

	if c.Temperature != nil {
		m.Add("Temperature", document.NewFloat(*c.Temperature))
	}
}

// base64Floats decodes a base64 packed little-endian float32 array,
// stripping the wrapping whitespace first.
func base64Floats(text string) ([]float64, error) {
	clean := strings.Map(dropSpace, text)

	raw, err := base64.StdEncoding.DecodeString(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	return readers.Float32Slice(raw)
}

func dropSpace(r rune) rune {
	switch r {
	default:
		return r
	case '\n', '\r', '\t', ' ':
		return -1
	}
}

package document_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"biometa-converter/document"
)

func Example() {
	fmt.Println(document.NewString("CFTR").Kind())
	fmt.Println(document.NewInt(40).Kind())
	fmt.Println(document.NewFloat(13.5).Kind())
	fmt.Println(document.NewBool(true).Kind())
	fmt.Println(document.NewFloatList([]float64{0, 0.5}).Kind())
	fmt.Println(document.NewMapping().Kind())
	fmt.Println(document.Value{}.Kind())
	// Output:
	// KindString
	// KindInt
	// KindFloat
	// KindBool
	// KindList
	// KindMapping
	// KindEnum(0)
}

func TestKindPredicates(t *testing.T) {
	for _, k := range []document.KindEnum{
		document.KindString, document.KindInt, document.KindFloat, document.KindBool,
	} {
		assert.True(t, k.IsScalar(), k.String())
	}

	assert.False(t, document.KindList.IsScalar())
	assert.False(t, document.KindMapping.IsScalar())

	assert.True(t, document.KindInt.IsNumber())
	assert.True(t, document.KindFloat.IsNumber())
	assert.False(t, document.KindString.IsNumber())
	assert.False(t, document.KindBool.IsNumber())
}

func TestKindNamesAreDefined(t *testing.T) {
	for k := document.KindEnum(1); int(k) < document.KindTotal; k++ {
		assert.NotContains(t, k.String(), "KindEnum(")
	}
}

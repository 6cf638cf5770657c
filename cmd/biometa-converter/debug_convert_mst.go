//go:build ignore

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"biometa-converter/readers/mst"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: go run debug_convert_mst.go <run.moc|export.xlsx|export.txt>")
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Println("build logger:", err)
		os.Exit(1)
	}

	out, err := mst.New(mst.WithLogger(logger)).Convert(os.Args[1])
	if err != nil {
		fmt.Println("convert:", err)
		os.Exit(1)
	}

	fmt.Println(out)
}

package buildinfo_test

import (
	"fmt"

	"github.com/dungpa45/5-star-rating/internal/buildinfo"
)

// ExampleDefaultInfo демонстрирует создание информации о сборке по умолчанию
func ExampleDefaultInfo() {
	info := buildinfo.DefaultInfo()
	fmt.Println(info)

	// Output:
	// Version: N/A, Date: N/A, Commit: N/A
}

// ExampleNewInfo показывает подстановку "N/A" для незаданных значений
func ExampleNewInfo() {
	info := buildinfo.NewInfo("v1.2.0", "", "9f1c2e7")
	fmt.Printf("Version: %s\n", info.Version)
	fmt.Printf("Date: %s\n", info.Date)
	fmt.Printf("Commit: %s\n", info.Commit)

	// Output:
	// Version: v1.2.0
	// Date: N/A
	// Commit: 9f1c2e7
}

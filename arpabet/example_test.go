package arpabet_test

import (
	"fmt"

	"github.com/Brono25/cacoepy/arpabet"
)

// ExampleNewAligner aligns a produced word against its dictionary form.
func ExampleNewAligner() {
	al, err := arpabet.NewAligner()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := al.Align([]string{"dh", "ah", "m"}, []string{"d", "iy", "ah", "m"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.A)
	fmt.Println(res.B)
	fmt.Println(res.Score)
	// Output:
	// [dh - ah m]
	// [d iy ah m]
	// 17
}

// ExampleParseMark decodes annotated phone labels.
func ExampleParseMark() {
	for _, raw := range []string{"AH0", "Z,S,s", "sil,AH,a", "T,sil,d"} {
		m, _ := arpabet.ParseMark(raw, "-")
		fmt.Printf("%-9s %s %s %s\n", raw, m.Target, m.Perceived, m.Kind)
	}
	// Output:
	// AH0       ah ah correct
	// Z,S,s     z s substitution
	// sil,AH,a  - ah addition
	// T,sil,d   t - deletion
}

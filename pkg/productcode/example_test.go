package productcode_test

import (
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/productcode"
)

func ExampleParse() {
	code, err := productcode.Parse("036000291452")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%T %s %v\n", code, code, code.Countries())
	// Output: productcode.UPCA 036000291452 [United States Canada]
}

func ExampleNewISBN() {
	isbn, _ := productcode.NewISBN("978-0-13-468599-1")
	group, _ := isbn.Group()
	publisher, _ := isbn.Publisher()
	title, _ := isbn.Title()
	fmt.Println(group, publisher, title)
	// Output: 0 13 468599
}

package table_test

import (
	"fmt"
	"os"

	"github.com/go-sif/coltable/table"
)

func Example() {
	users := table.New(&table.Options[int]{Name: "Users", Out: os.Stdout})
	users.AddColumn("ID")
	users.AddColumn("Age")
	users.PushBack(0, 1)
	users.PushBack(0, 2)
	users.PushBack(1, 30)
	users.Print()
	// Output:
	// |----------|----------|----------|
	// |             Users              |
	// |----------|----------|----------|
	// |          |Col 0     |Col 1     |
	// |----------|----------|----------|
	// |          |ID        |Age       |
	// |----------|----------|----------|
	// |Row 0     |1         |30        |
	// |----------|----------|----------|
	// |Row 1     |2         |          |
	// |----------|----------|----------|
}

func ExampleTable_GetData() {
	t := table.New[int](nil)
	t.AddColumn("Score")
	t.PushBack(0, 10)
	v, err := t.GetData(0, 0)
	if err != nil {
		panic(err)
	}
	*v += 5
	again, _ := t.GetData(0, 0)
	fmt.Println(*again)
	// Output: 15
}

func ExampleTable_Print_empty() {
	t := table.New(&table.Options[string]{Out: os.Stdout})
	t.Print()
	// Output: table is empty
}

package crucible_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/crucible"
	"github.com/katalvlaran/crucible/profile"
)

func ExampleSolve() {
	rep, err := crucible.Solve(context.Background(), referenceGrid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, a := range rep.Answers {
		fmt.Printf("%s: %d\n", a.Profile, a.Cost)
	}
	// Output:
	// crucible[1..3]: 102
	// ultra[4..10]: 94
}

func ExampleWithProfiles() {
	rep, err := crucible.Solve(context.Background(), "111111111111\n999999999991\n999999999991\n999999999991\n999999999991\n",
		crucible.WithProfiles(profile.Ultra()))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rep.Answers[0].Cost)
	// Output: 71
}

func ExampleWithReturnPath() {
	rep, err := crucible.Solve(context.Background(), "111111111111\n999999999991\n999999999991\n999999999991\n999999999991\n",
		crucible.WithProfiles(profile.Ultra()), crucible.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rep.Answers[0].Rendered)
	// Output:
	// 1>>>>>>>1111
	// 9999999v9991
	// 9999999v9991
	// 9999999v9991
	// 9999999v>>>>
}

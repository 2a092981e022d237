package rhmap_test

import (
	"fmt"

	"github.com/robinhoodmap/rhmap"
)

type user struct {
	Name string
	Age  int
}

func userHash(u *user, seed0, seed1 uint64) uint64 {
	return rhmap.Sip64([]byte(u.Name), seed0, seed1)
}

func userEqual(a, b *user, _ any) int {
	if a.Name == b.Name {
		return 0
	}
	return 1
}

func Example() {
	users, err := rhmap.New[user](userHash, userEqual)
	if err != nil {
		panic(err)
	}

	users.Set(user{Name: "Dale", Age: 44})
	users.Set(user{Name: "Roger", Age: 68})
	users.Set(user{Name: "Jane", Age: 47})

	for _, name := range []string{"Jane", "Roger", "Dale", "Tom"} {
		if u, ok := users.Get(user{Name: name}); ok {
			fmt.Printf("%s is %d years old\n", u.Name, u.Age)
		} else {
			fmt.Printf("%s not found\n", name)
		}
	}

	fmt.Println("count:", users.Count())

	// Output:
	// Jane is 47 years old
	// Roger is 68 years old
	// Dale is 44 years old
	// Tom not found
	// count: 3
}

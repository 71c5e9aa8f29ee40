// server/cmd/gen-invite/main.go
package main

import (
	"flag"
	"fmt"

	"fforecasting/server/pkg/invitecode"
)

// 运维手动补发邀请码用，生成的 code 还要自己 INSERT 进库
func main() {
	n := flag.Int("n", 1, "how many codes to generate")
	flag.Parse()

	for i := 0; i < *n; i++ {
		fmt.Println(invitecode.MustNew())
	}
}

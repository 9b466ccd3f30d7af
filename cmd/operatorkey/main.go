// Command operatorkey hashes an operator key for OPERATOR_KEY_HASH. The key is
// read from the first argument or standard input.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-posemaze/identity"
)

func main() {
	var key string
	if len(os.Args) > 1 {
		key = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "reading key:", err)
			os.Exit(1)
		}
		key = strings.TrimRight(line, "\r\n")
	}

	hash, err := identity.HashKey(key)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

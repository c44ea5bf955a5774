package main

import "github.com/NguyenMinhQuan0110/doantotnghiep-fe/cmd"

func main() {
	cmd.Execute()
}

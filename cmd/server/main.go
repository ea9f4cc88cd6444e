package main

import (
	_ "github.com/manethdewpura/AssisTea-Mobile-App-sub000/docs"
)

// @title           AssisTea Scheduler API
// @version         1.0
// @description     Worker to field assignment scheduling for tea plantations
// @BasePath        /api/v1
func main() {
	Execute()
}

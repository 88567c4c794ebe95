package main

import (
	"github.com/VoxelTask/VoxSwapSDK/cmd/voxverify/cmd"
)

func main() {
	cmd.Execute()
}

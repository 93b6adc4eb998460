package gearbox_test

import (
	"fmt"

	"github.com/katalvlaran/checkpoint/gearbox"
)

func ExampleCar_ShiftUp() {
	car, err := gearbox.New("Toyota", 4)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(car.ChangeGear(gearbox.Drive))
	msg, _ := car.ShiftUp()
	fmt.Println(msg)
	msg, _ = car.ShiftDown()
	fmt.Println(msg)
	if _, err := car.ShiftDown(); err != nil {
		fmt.Println(gearbox.Message(err))
	}
	// Output:
	// You're driving now.
	// You've shifted up to gear 2
	// You've shifted down to gear 1
	// You're already at first gear!
}

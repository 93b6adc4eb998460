// Package gearbox models a car with a gear selector (park, drive, neutral)
// and a numbered manual gear that can be shifted between 1 and 10.
//
// Usage:
//
//	car, err := gearbox.New("Toyota", 4)
//	if err != nil {
//	  // ErrEmptyModel or ErrBadSeats
//	}
//	fmt.Println(car.ChangeGear(gearbox.Drive)) // You're driving now.
//	msg, err := car.ShiftUp()                  // You've shifted up to gear 2
//	if err != nil {
//	  fmt.Println(gearbox.Message(err))        // You've hit the limit!
//	}
//
// A Car is not safe for concurrent use.
package gearbox

package takeable_test

import (
	"fmt"

	"github.com/npillmayer/takeable"
)

// ConnState is the state variant of a Conn.
type ConnState interface {
	Name() string
}

type Disconnected struct{ retries int }

type Connected struct {
	session string
	retries int
}

func (Disconnected) Name() string { return "disconnected" }
func (Connected) Name() string    { return "connected" }

// Conn keeps its state variant in a Takeable and transitions by value.
type Conn struct {
	state takeable.Takeable[ConnState]
}

func NewConn() *Conn {
	c := &Conn{}
	c.state.Replace(Disconnected{})
	return c
}

// Connect moves a disconnected Conn into a new session. It reports whether a
// transition took place.
func (c *Conn) Connect(session string) bool {
	return takeable.BorrowResult(&c.state, func(s ConnState) (ConnState, bool) {
		if d, ok := s.(Disconnected); ok {
			return Connected{session: session, retries: d.retries + 1}, true
		}
		return s, false
	})
}

func (c *Conn) Disconnect() {
	c.state.Borrow(func(s ConnState) ConnState {
		if conn, ok := s.(Connected); ok {
			return Disconnected{retries: conn.retries}
		}
		return s
	})
}

func Example_stateMachine() {
	c := NewConn()
	fmt.Println(c.state.Get().Name())
	fmt.Println(c.Connect("s1"))
	fmt.Println(c.state.Get().Name())
	fmt.Println(c.Connect("s2"))
	c.Disconnect()
	fmt.Println(c.state.Get().Name())
	c.Connect("s3")
	fmt.Printf("%+v\n", c.state.Get())
	// Output:
	// disconnected
	// true
	// connected
	// false
	// disconnected
	// {session:s3 retries:2}
}

func ExampleBorrowResult() {
	cell := takeable.New(5)
	old := takeable.BorrowResult(cell, func(x int) (int, int) { return x + 1, x })
	fmt.Println(old, cell.Get())
	// Output: 5 6
}

func ExampleTakeable_Take() {
	cell := takeable.New("payload")
	fmt.Println(cell.Take())
	fmt.Println(cell.IsUsable(), cell)
	// Output:
	// payload
	// false Takeable(<unusable>)
}

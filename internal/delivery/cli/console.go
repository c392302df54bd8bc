package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"roomreserve/internal/domain"
)

// lookupEmail satisfies the Teacher constructor when only the name matters.
// Teacher identity is the name, so any valid address works for lookups.
const lookupEmail = "a@a.a"

// console reads prompted values line by line and re-prompts whenever a
// domain constructor rejects the input. It never duplicates the validation
// rules themselves.
type console struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewScanner(in), out: out}
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) printErr(err error) {
	c.printf("ERROR: %v\n", err)
}

func (c *console) readLine(prompt string) string {
	if c.eof {
		return ""
	}
	c.printf("%s", prompt)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) readInt(prompt string) (int, bool) {
	for !c.eof {
		n, err := strconv.Atoi(c.readLine(prompt))
		if c.eof {
			break
		}
		if err != nil {
			c.printf("Please enter a number.\n")
			continue
		}
		return n, true
	}
	return 0, false
}

func (c *console) readRoom() (domain.Room, bool) {
	for !c.eof {
		name := c.readLine("Room name: ")
		capacity, ok := c.readInt("Room capacity: ")
		if !ok {
			break
		}
		room, err := domain.NewRoom(name, capacity)
		if err != nil {
			c.printErr(err)
			continue
		}
		return room, true
	}
	return domain.Room{}, false
}

// readRoomName reads just the identity of a room, for lookups and deletes.
func (c *console) readRoomName() (domain.Room, bool) {
	for !c.eof {
		room, err := domain.NewRoom(c.readLine("Room name: "), 0)
		if c.eof {
			break
		}
		if err != nil {
			c.printErr(err)
			continue
		}
		return room, true
	}
	return domain.Room{}, false
}

func (c *console) readTeacher() (domain.Teacher, bool) {
	for !c.eof {
		name := c.readLine("Teacher name: ")
		email := c.readLine("Teacher email: ")
		phone := c.readLine("Teacher phone (optional): ")
		if c.eof {
			break
		}
		teacher, err := domain.NewTeacher(name, email, phone)
		if err != nil {
			c.printErr(err)
			continue
		}
		return teacher, true
	}
	return domain.Teacher{}, false
}

// readTeacherName reads just the identity of a teacher, for lookups and
// deletes.
func (c *console) readTeacherName() (domain.Teacher, bool) {
	for !c.eof {
		teacher, err := domain.NewTeacher(c.readLine("Teacher name: "), lookupEmail, "")
		if c.eof {
			break
		}
		if err != nil {
			c.printErr(err)
			continue
		}
		return teacher, true
	}
	return domain.Teacher{}, false
}

func (c *console) readDay() (day string, ok bool) {
	return c.readLine("Day (dd/mm/yyyy): "), !c.eof
}

func (c *console) readSlot() (domain.Slot, bool) {
	for !c.eof {
		kind, ok := c.readInt("Slot type (1 = hour, 2 = half day): ")
		if !ok {
			break
		}
		if kind != 1 && kind != 2 {
			c.printf("Please choose 1 or 2.\n")
			continue
		}
		dayText, ok := c.readDay()
		if !ok {
			break
		}
		day, err := domain.ParseDay(dayText)
		if err != nil {
			c.printErr(err)
			continue
		}

		var slot domain.Slot
		if kind == 1 {
			hour, err := domain.ParseHour(c.readLine("Hour (hh or hh:mm): "))
			if c.eof {
				break
			}
			if err != nil {
				c.printErr(err)
				continue
			}
			slot, err = domain.NewHourSlot(day, hour)
			if err != nil {
				c.printErr(err)
				continue
			}
		} else {
			segment, ok := c.readSegment()
			if !ok {
				break
			}
			var err error
			slot, err = domain.NewRangeSlot(day, segment)
			if err != nil {
				c.printErr(err)
				continue
			}
		}
		return slot, true
	}
	return domain.Slot{}, false
}

func (c *console) readSegment() (domain.Segment, bool) {
	for !c.eof {
		n, ok := c.readInt("Segment (1 = morning, 2 = afternoon): ")
		if !ok {
			break
		}
		switch n {
		case 1:
			return domain.Morning, true
		case 2:
			return domain.Afternoon, true
		default:
			c.printf("Please choose 1 or 2.\n")
		}
	}
	return "", false
}

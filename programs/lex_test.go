package programs

import (
	"errors"
	"slices"
	"testing"
)

func equal(a, b Program) bool {
	return slices.Equal(a, b)
}

func TestLexBasic(t *testing.T) {
	program, err := Lex([]byte("<>+-.,"))
	if err != nil {
		t.Fatal(err)
	}
	expected := Program{
		Instruction(OpMoveLeft),
		Instruction(OpMoveRight),
		Instruction(OpIncrement),
		Instruction(OpDecrement),
		Instruction(OpPrint),
		Instruction(OpRead),
	}
	if !equal(program, expected) {
		t.Fatalf("got %v", []Instruction(program))
	}
}

func TestLexIgnoresOtherBytes(t *testing.T) {
	plain, err := Lex([]byte("++[>+<-]."))
	if err != nil {
		t.Fatal(err)
	}
	commented, err := Lex([]byte("add two\n+ +\t[ move > inc + back < dec - ] print . é\x00\xff"))
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != len(commented) {
		t.Fatalf("got %d and %d", len(plain), len(commented))
	}
	for i := range plain {
		if plain[i] != commented[i] {
			t.Fatalf("differ at %d: %v %v", i, plain[i], commented[i])
		}
	}
	if str := commented.String(); str != "++[>+<-]." {
		t.Fatalf("got %q", str)
	}
}

func TestLexEmpty(t *testing.T) {
	program, err := Lex([]byte("no instructions here"))
	if err != nil {
		t.Fatal(err)
	}
	if len(program) != 0 {
		t.Fatalf("got %v", program)
	}
}

func TestLexLoopTargets(t *testing.T) {
	program, err := Lex([]byte("[[]+[[]]]"))
	if err != nil {
		t.Fatal(err)
	}
	pairs := map[int]int{
		0: 8,
		1: 2,
		4: 7,
		5: 6,
	}
	for start, end := range pairs {
		if program[start] != OpStartLoop.With(end) {
			t.Fatalf("at %d got %v", start, program[start])
		}
		if program[end] != OpEndLoop.With(start) {
			t.Fatalf("at %d got %v", end, program[end])
		}
	}
	if err := program.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestLexTargetsUseFilteredIndexes(t *testing.T) {
	program, err := Lex([]byte("comment [ more comment ]"))
	if err != nil {
		t.Fatal(err)
	}
	if len(program) != 2 {
		t.Fatalf("got %v", program)
	}
	if program[0].Target() != 1 || program[1].Target() != 0 {
		t.Fatalf("got %v", program)
	}
}

func TestLexUnmatched(t *testing.T) {
	for src, offset := range map[string]int{
		"[[]":     0,
		"[":       0,
		"]":       0,
		"[]]":     2,
		"+][":     1,
		"[]+[[]":  3,
		"a[b]c]d": 2,
	} {
		_, err := Lex([]byte(src))
		if !errors.Is(err, ErrUnmatchedLoop) {
			t.Fatalf("%q: got %v", src, err)
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("%q: got %T", src, err)
		}
		if parseErr.Offset != offset {
			t.Fatalf("%q: got offset %d", src, parseErr.Offset)
		}
	}
}

func TestDecode(t *testing.T) {
	for _, c := range []byte(Alphabet) {
		op, err := Decode(c)
		if err != nil {
			t.Fatal(err)
		}
		if op.Char() != c {
			t.Fatalf("got %v for %q", op, c)
		}
	}

	_, err := Decode('a')
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("got %v", err)
	}
}

func TestInstructionEncoding(t *testing.T) {
	inst := OpEndLoop.With(12345)
	if inst.Op() != OpEndLoop {
		t.Fatalf("got %v", inst.Op())
	}
	if inst.Target() != 12345 {
		t.Fatalf("got %v", inst.Target())
	}
	if str := inst.String(); str != "EndLoop(12345)" {
		t.Fatalf("got %s", str)
	}
	if str := Instruction(OpPrint).String(); str != "Print" {
		t.Fatalf("got %s", str)
	}
	if str := Op(0).String(); str != "Op(0)" {
		t.Fatalf("got %s", str)
	}
}

func TestProgramCheck(t *testing.T) {
	good := Program{
		OpStartLoop.With(3),
		OpStartLoop.With(2),
		OpEndLoop.With(1),
		OpEndLoop.With(0),
	}
	if err := good.Check(); err != nil {
		t.Fatal(err)
	}

	for _, bad := range []Program{
		{OpStartLoop.With(0)},
		{OpStartLoop.With(5)},
		{OpEndLoop.With(0), OpStartLoop.With(0)},
		{OpStartLoop.With(1), OpEndLoop.With(1)},
		// crossing
		{
			OpStartLoop.With(2),
			OpStartLoop.With(3),
			OpEndLoop.With(0),
			OpEndLoop.With(1),
		},
	} {
		if err := bad.Check(); !errors.Is(err, ErrUnmatchedLoop) {
			t.Fatalf("%v: got %v", bad, err)
		}
	}

	if err := (Program{Instruction(0)}).Check(); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("got %v", err)
	}
}

func TestLexRoundTrip(t *testing.T) {
	src := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++."
	program, err := Lex([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if err := program.Check(); err != nil {
		t.Fatal(err)
	}
	again, err := Lex([]byte(program.String()))
	if err != nil {
		t.Fatal(err)
	}
	if !equal(again, program) {
		t.Fatalf("got %v", []Instruction(again))
	}
}

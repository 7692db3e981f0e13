package u64

import (
	"testing"
	"testing/quick"
)

func TestAdd(t *testing.T) {
	for _, tt := range []struct {
		a, b string
		want string
	}{
		{"4f3f9abb2e7c8889", "68825a36ac081669", "b7c1f4f1da849ef2"},
		// Wraps past 2^64.
		{"4aa537e02d4ff2d7", "e8c2a9e22698b38b", "3367e1c253e8a662"},
		{"ffffffffffffffff", "1", "0000000000000000"},
		{"00000000ffffffff", "1", "0000000100000000"},
		{"000000000000ffff", "1", "0000000000010000"},
		{"0", "0", "0000000000000000"},
	} {
		a, b := MustFromHex(tt.a), MustFromHex(tt.b)
		if got := Add(a, b).ToHex(); got != tt.want {
			t.Errorf("Add(%s, %s): got %s; want %s", tt.a, tt.b, got, tt.want)
		}
		if got := a.Add(b).ToHex(); got != tt.want {
			t.Errorf("%s.Add(%s): got %s; want %s", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddHalves(t *testing.T) {
	got := Add(MustFromHex("4aa537e02d4ff2d7"), MustFromHex("e8c2a9e22698b38b"))
	// The carry out of the high half is dropped, not kept in hi.
	if hi, lo := got.HiLo(); hi != 862446018 || lo != 1407755874 {
		t.Errorf("got (%d, %d); want (862446018, 1407755874)", hi, lo)
	}
}

func TestSub(t *testing.T) {
	for _, tt := range []struct {
		a, b string
		want string
	}{
		{"68825a36ac081669", "4f3f9abb2e7c8889", "1942bf7b7d8b8de0"},
		// Underflow wraps.
		{"4f3f9abb2e7c8889", "68825a36ac081669", "e6bd408482747220"},
		{"23f4c41bc889043a", "300aff5546ce45e6", "f3e9c4c681babe54"},
		{"0", "1", "ffffffffffffffff"},
	} {
		a, b := MustFromHex(tt.a), MustFromHex(tt.b)
		if got := Sub(a, b).ToHex(); got != tt.want {
			t.Errorf("Sub(%s, %s): got %s; want %s", tt.a, tt.b, got, tt.want)
		}
	}
	if hi, lo := Sub(MustFromHex("4f3f9abb2e7c8889"), MustFromHex("68825a36ac081669")).HiLo(); hi != 3871162500 || lo != 2188669472 {
		t.Errorf("got (%d, %d); want (3871162500, 2188669472)", hi, lo)
	}
}

func TestNeg(t *testing.T) {
	for _, tt := range []struct {
		a    string
		want string
	}{
		{"4f3f9abb2e7c8889", "b0c06544d1837777"},
		{"0", "0000000000000000"},
		{"1", "ffffffffffffffff"},
		{"8000000000000000", "8000000000000000"},
	} {
		if got := Neg(MustFromHex(tt.a)).ToHex(); got != tt.want {
			t.Errorf("Neg(%s): got %s; want %s", tt.a, got, tt.want)
		}
	}
}

func TestNot(t *testing.T) {
	if got, want := Not(MustFromHex("4f3f9abb2e7c8889")).ToHex(), "b0c06544d1837776"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
	if got := Not(Zero); got != Max {
		t.Errorf("got %s; want %s", got, Max)
	}
}

func TestOne(t *testing.T) {
	if got, want := One.ToHex(), "0000000000000001"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
}

func TestInc(t *testing.T) {
	got := MustFromHex("4f3f9abb2e7c8889").Inc()
	if hi, lo := got.HiLo(); hi != 1329568443 || lo != 779913354 {
		t.Errorf("got (%d, %d); want (1329568443, 779913354)", hi, lo)
	}
	if got, want := got.ToHex(), "4f3f9abb2e7c888a"; got != want {
		t.Errorf("got %s; want %s", got, want)
	}
	if got := Inc(Max); got != Zero {
		t.Errorf("Inc(Max): got %s; want %s", got, Zero)
	}
}

func TestMul(t *testing.T) {
	for _, tt := range []struct {
		a, b string
		want string
	}{
		{"4f3f9abb2e7c8889", "2", "9e7f35765cf91112"},
		{"4f3f9abb2e7c8889", "0", "0000000000000000"},
		{"0", "4f3f9abb2e7c8889", "0000000000000000"},
		{"4f3f9abb2e7c8889", "1", "4f3f9abb2e7c8889"},
		{"ffffffffffffffff", "ffffffffffffffff", "0000000000000001"},
		{"00000000ffffffff", "00000000ffffffff", "fffffffe00000001"},
		{"100000000", "100000000", "0000000000000000"},
	} {
		a, b := MustFromHex(tt.a), MustFromHex(tt.b)
		if got := Mul(a, b).ToHex(); got != tt.want {
			t.Errorf("Mul(%s, %s): got %s; want %s", tt.a, tt.b, got, tt.want)
		}
	}
	got := Mul(MustFromHex("4f3f9abb2e7c8889"), New(0, 2))
	if hi, lo := got.HiLo(); hi != 2659136886 || lo != 1559826706 {
		t.Errorf("got (%d, %d); want (2659136886, 1559826706)", hi, lo)
	}
}

func TestArithMatchesNative(t *testing.T) {
	for _, tt := range []struct {
		name   string
		emu    func(a, b Uint64) Uint64
		native func(a, b uint64) uint64
	}{
		{"Add", Add, func(a, b uint64) uint64 { return a + b }},
		{"Sub", Sub, func(a, b uint64) uint64 { return a - b }},
		{"Mul", Mul, func(a, b uint64) uint64 { return a * b }},
		{"NegA", func(a, _ Uint64) Uint64 { return Neg(a) }, func(a, _ uint64) uint64 { return -a }},
		{"NotA", func(a, _ Uint64) Uint64 { return Not(a) }, func(a, _ uint64) uint64 { return ^a }},
		{"IncA", func(a, _ Uint64) Uint64 { return Inc(a) }, func(a, _ uint64) uint64 { return a + 1 }},
	} {
		f := func(a, b uint64) bool {
			return tt.emu(FromUint64(a), FromUint64(b)).Uint64() == tt.native(a, b)
		}
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%s: %s", tt.name, err)
		}
	}
}

func TestAddProperties(t *testing.T) {
	commutative := func(a, b uint64) bool {
		x, y := FromUint64(a), FromUint64(b)
		return Add(x, y) == Add(y, x)
	}
	associative := func(a, b, c uint64) bool {
		x, y, z := FromUint64(a), FromUint64(b), FromUint64(c)
		return Add(Add(x, y), z) == Add(x, Add(y, z))
	}
	identity := func(a uint64) bool {
		x := FromUint64(a)
		return Add(x, Zero) == x
	}
	for name, f := range map[string]any{
		"commutative": commutative,
		"associative": associative,
		"identity":    identity,
	} {
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%s: %s", name, err)
		}
	}
}

func TestSubProperties(t *testing.T) {
	f := func(a, b uint64) bool {
		x, y := FromUint64(a), FromUint64(b)
		return Sub(x, y) == Add(x, Neg(y)) &&
			Sub(x, x) == Zero &&
			Neg(Neg(x)) == x
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

var sink Uint64

func BenchmarkAdd(b *testing.B) {
	x, y := MustFromHex("4aa537e02d4ff2d7"), MustFromHex("e8c2a9e22698b38b")
	for range b.N {
		sink = Add(x, y)
	}
}

func BenchmarkMul(b *testing.B) {
	x, y := MustFromHex("4aa537e02d4ff2d7"), MustFromHex("e8c2a9e22698b38b")
	for range b.N {
		sink = Mul(x, y)
	}
}

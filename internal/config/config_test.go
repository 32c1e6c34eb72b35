package config

import "testing"

func TestKafkaBrokerList(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"localhost:9092", 1},
		{"a:9092,b:9092", 2},
		{" a:9092 , , b:9092 ", 2},
	}

	for _, c := range cases {
		cfg := &Config{KafkaBrokers: c.in}
		if got := cfg.KafkaBrokerList(); len(got) != c.want {
			t.Fatalf("KafkaBrokerList(%q) = %v, want %d brokers", c.in, got, c.want)
		}
	}
}

func TestAddr(t *testing.T) {
	cfg := &Config{ServerPort: "9090"}
	if got := cfg.Addr(); got != ":9090" {
		t.Fatalf("Addr() = %q, want :9090", got)
	}
}

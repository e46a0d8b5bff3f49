package hostsvc

import "testing"

func TestApproximateMetricsWidensWideRunes(t *testing.T) {
	m := ApproximateMetrics{}
	narrow := m.Width("i", "Helvetica", 10)
	wide := m.Width("m", "Helvetica", 10)
	if wide <= narrow {
		t.Fatalf("expected 'm' wider than 'i', got m=%v i=%v", wide, narrow)
	}
}

func TestApproximateMetricsSumsMultipleRunes(t *testing.T) {
	m := ApproximateMetrics{}
	single := m.Width("a", "Helvetica", 10)
	double := m.Width("aa", "Helvetica", 10)
	if diff := double - single*2; diff > 0.0001 || diff < -0.0001 {
		t.Fatalf("expected width to scale linearly with rune count, got single=%v double=%v", single, double)
	}
}

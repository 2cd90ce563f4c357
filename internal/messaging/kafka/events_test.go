package kafka

import "testing"

func TestTopicForAggregate(t *testing.T) {
	cases := []struct {
		aggregateType string
		want          string
	}{
		{aggregateType: AggregateTypeOrder, want: TopicOrderEvents},
		{aggregateType: AggregateTypeProduct, want: TopicProductEvents},
		// Неизвестный агрегат уходит в topic товаров по умолчанию.
		{aggregateType: "unknown", want: TopicProductEvents},
	}

	for _, tc := range cases {
		if got := TopicForAggregate(tc.aggregateType); got != tc.want {
			t.Fatalf("TopicForAggregate(%q) = %q, want %q", tc.aggregateType, got, tc.want)
		}
	}
}

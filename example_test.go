package dispatch_test

import (
	"context"
	"fmt"

	"github.com/tgcore/dispatch"
)

func ExampleBind1() {
	h := dispatch.Bind1(func(ctx context.Context, msg dispatch.MessageText) error {
		fmt.Println("text:", msg.Text)
		return nil
	})

	bot := &dispatch.Bot{ID: 99, Username: "examplebot"}
	d := dispatch.New()

	raw := []byte(`{"update_id": 1, "message": {"message_id": 1, "date": 1, "chat": {"id": 10, "type": "private"}, "text": "hello"}}`)
	if err := d.DispatchRaw(context.Background(), bot, h, raw); err != nil {
		fmt.Println("error:", err)
	}
	// Output: text: hello
}

func ExampleMaybe() {
	h := dispatch.Bind2(func(ctx context.Context, u *dispatch.Update, cq dispatch.Maybe[*dispatch.CallbackQuery]) error {
		if cq.OK {
			fmt.Println("button:", cq.Value.Data)
		} else {
			fmt.Println("not a button press:", dispatch.KindOf(u))
		}
		return nil
	})

	bot := &dispatch.Bot{ID: 99}
	d := dispatch.New()

	u := &dispatch.Update{
		UpdateID:      1,
		CallbackQuery: &dispatch.CallbackQuery{ID: "cq1", Data: "refresh"},
	}
	if err := d.Dispatch(context.Background(), bot, h, u); err != nil {
		fmt.Println("error:", err)
	}
	// Output: button: refresh
}

func ExampleDetectKind() {
	raw := []byte(`{"update_id": 1, "poll_answer": {"poll_id": "p1", "option_ids": [2]}}`)
	fmt.Println(dispatch.DetectKind(raw))
	// Output: poll_answer
}

func ExampleBuilder() {
	text := dispatch.NewBuilder(dispatch.HTML).
		Quote("Release 1.2 is out: 10 > 9, ").
		Bold("finally").
		Text(" ").
		Hashtag("release").
		String()
	fmt.Println(text)
	// Output: Release 1.2 is out: 10 &gt; 9, <b>finally</b> #release
}

func ExampleApplyEntity() {
	text, _ := dispatch.ApplyEntity(dispatch.Markdown, "Hello, world!", dispatch.NewBoldEntity(7, 5))
	fmt.Println(text)
	// Output: Hello, *world*!
}

func ExampleParseHTML() {
	text, entities, _ := dispatch.ParseHTML("Hello, <b>world</b>!")
	fmt.Println(text)
	for _, e := range entities {
		fmt.Printf("%s [%d, %d)\n", e.Type, e.Offset, e.Offset+e.Length)
	}
	// Output:
	// Hello, world!
	// bold [7, 12)
}

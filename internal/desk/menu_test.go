package desk

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ehr/patientdesk/internal/platform/metrics"
)

func runScript(t *testing.T, script string) (*Desk, string) {
	t.Helper()
	d := New(zerolog.Nop(), metrics.New())
	var out bytes.Buffer
	if err := NewMenu(d, strings.NewReader(script), &out).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return d, out.String()
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Errorf("expected output to contain %q\n--- output ---\n%s", w, out)
		}
	}
}

func TestMenu_RegisterAndDisplay(t *testing.T) {
	d, out := runScript(t, "2\n1 7 Alice 30 Flu\n1 8 Bob 40 Cold\n2\n9\n")

	assertContains(t, out,
		"No patients registered yet.",
		"Patient Alice registered successfully!",
		"Patient Bob registered successfully!",
		"--- Patient List ---",
		"Exiting...",
	)
	bob := strings.Index(out, "ID: 8 | Name: Bob | Age: 40 | Disease: Cold")
	alice := strings.Index(out, "ID: 7 | Name: Alice | Age: 30 | Disease: Flu")
	if bob < 0 || alice < 0 || bob > alice {
		t.Errorf("expected Bob listed before Alice, got\n%s", out)
	}
	if d.Patients.Count() != 2 {
		t.Errorf("expected 2 patients, got %d", d.Patients.Count())
	}
}

func TestMenu_Appointments(t *testing.T) {
	_, out := runScript(t, "4\n3 5\n3 6\n4\n4\n4\n9\n")

	assertContains(t, out,
		"Appointment scheduled for patient ID: 5",
		"Appointment scheduled for patient ID: 6",
		"Processing appointment for patient ID: 5",
		"Processing appointment for patient ID: 6",
	)
	if strings.Count(out, "No appointments to process.") != 2 {
		t.Errorf("expected two empty-queue messages, got\n%s", out)
	}
}

func TestMenu_AppointmentQueueFull(t *testing.T) {
	var script strings.Builder
	for i := 0; i < 11; i++ {
		script.WriteString("3 1\n")
	}
	script.WriteString("9\n")
	_, out := runScript(t, script.String())

	if strings.Count(out, "Appointment scheduled") != 10 {
		t.Errorf("expected 10 scheduled, got\n%s", out)
	}
	assertContains(t, out, "Appointment queue is full!")
}

func TestMenu_Emergencies(t *testing.T) {
	_, out := runScript(t, "5 1 5\n5 2 3\n5 3 8\n6\n6\n6\n6\n9\n")

	assertContains(t, out, "Emergency patient 2 added with severity 3.", "No emergency patients.")
	first := strings.Index(out, "Processing emergency patient 2 with severity 3.")
	second := strings.Index(out, "Processing emergency patient 1 with severity 5.")
	third := strings.Index(out, "Processing emergency patient 3 with severity 8.")
	if first < 0 || second < first || third < second {
		t.Errorf("expected severity order 3,5,8, got\n%s", out)
	}
}

func TestMenu_Visits(t *testing.T) {
	_, out := runScript(t, "8\n7 12\n7 13\n8\n8\n9\n")

	assertContains(t, out,
		"No patient history.",
		"Doctor visited patient ID: 12",
		"Doctor visited patient ID: 13",
	)
	if strings.Index(out, "Last visited patient ID: 13") > strings.Index(out, "Last visited patient ID: 12") {
		t.Errorf("expected LIFO order, got\n%s", out)
	}
}

func TestMenu_InvalidChoices(t *testing.T) {
	_, out := runScript(t, "42\nhello\n9\n")
	if strings.Count(out, "Invalid choice! Try again.") != 2 {
		t.Errorf("expected two invalid-choice messages, got\n%s", out)
	}
}

func TestMenu_InvalidNumberCancelsAction(t *testing.T) {
	d, out := runScript(t, "3 abc\n9\n")
	assertContains(t, out, "Invalid number, action cancelled.")
	if d.Appointments.Status().Pending != 0 {
		t.Error("expected nothing scheduled")
	}
}

func TestMenu_EndOfInputExits(t *testing.T) {
	d, _ := runScript(t, "1 7 Alice")
	if d.Patients.Count() != 0 {
		t.Error("expected partial registration to be abandoned")
	}
}

func TestMenu_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := New(zerolog.Nop(), nil)
	err := NewMenu(d, strings.NewReader("9\n"), &bytes.Buffer{}).Run(ctx)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

package desk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const menuText = `
Hospital Patient Management System
1. Register Patient
2. Display Patients
3. Schedule Appointment
4. Process Appointment
5. Add Emergency Case
6. Process Emergency Case
7. Record Doctor Visit
8. Show Last Visited Patient
9. Exit
`

const choiceExit = 9

var errBadNumber = errors.New("not a number")

// Menu is the interactive dispatcher. It reads whitespace-separated tokens,
// so names and diseases are single words.
type Menu struct {
	desk *Desk
	in   *bufio.Scanner
	out  io.Writer
}

func NewMenu(d *Desk, in io.Reader, out io.Writer) *Menu {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &Menu{desk: d, in: sc, out: out}
}

// Run loops until the exit choice, end of input, or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(m.out, menuText)

		choice, err := m.promptInt("Enter choice: ")
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errBadNumber):
			fmt.Fprintln(m.out, "Invalid choice! Try again.")
			continue
		case err != nil:
			return err
		}
		if choice == choiceExit {
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		}

		err = m.dispatch(ctx, choice)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, errBadNumber):
			fmt.Fprintln(m.out, "Invalid number, action cancelled.")
		case err != nil:
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case 1:
		return m.registerPatient(ctx)
	case 2:
		m.displayPatients(ctx)
	case 3:
		return m.scheduleAppointment(ctx)
	case 4:
		m.processAppointment(ctx)
	case 5:
		return m.addEmergency(ctx)
	case 6:
		m.processEmergency(ctx)
	case 7:
		return m.recordVisit(ctx)
	case 8:
		m.lastVisit(ctx)
	default:
		fmt.Fprintln(m.out, "Invalid choice! Try again.")
	}
	return nil
}

func (m *Menu) registerPatient(ctx context.Context) error {
	id, err := m.promptInt("Enter ID: ")
	if err != nil {
		return err
	}
	name, err := m.promptWord("Enter Name: ")
	if err != nil {
		return err
	}
	age, err := m.promptInt("Enter Age: ")
	if err != nil {
		return err
	}
	disease, err := m.promptWord("Enter Disease: ")
	if err != nil {
		return err
	}
	rec := m.desk.Patients.Register(ctx, id, name, age, disease)
	fmt.Fprintf(m.out, "Patient %s registered successfully!\n", rec.Name)
	return nil
}

func (m *Menu) displayPatients(ctx context.Context) {
	all := m.desk.Patients.ListAll(ctx)
	if len(all) == 0 {
		fmt.Fprintln(m.out, "No patients registered yet.")
		return
	}
	fmt.Fprintln(m.out, "\n--- Patient List ---")
	for _, p := range all {
		fmt.Fprintf(m.out, "ID: %d | Name: %s | Age: %d | Disease: %s\n", p.ID, p.Name, p.Age, p.Disease)
	}
}

func (m *Menu) scheduleAppointment(ctx context.Context) error {
	id, err := m.promptInt("Enter Patient ID for appointment: ")
	if err != nil {
		return err
	}
	if err := m.desk.Appointments.Schedule(ctx, id); err != nil {
		fmt.Fprintln(m.out, "Appointment queue is full!")
		return nil
	}
	fmt.Fprintf(m.out, "Appointment scheduled for patient ID: %d\n", id)
	return nil
}

func (m *Menu) processAppointment(ctx context.Context) {
	id, err := m.desk.Appointments.ProcessNext(ctx)
	if err != nil {
		fmt.Fprintln(m.out, "No appointments to process.")
		return
	}
	fmt.Fprintf(m.out, "Processing appointment for patient ID: %d\n", id)
}

func (m *Menu) addEmergency(ctx context.Context) error {
	id, err := m.promptInt("Enter Patient ID: ")
	if err != nil {
		return err
	}
	severity, err := m.promptInt("Enter Severity (1-10): ")
	if err != nil {
		return err
	}
	if err := m.desk.Emergencies.Admit(ctx, id, severity); err != nil {
		fmt.Fprintln(m.out, "Emergency queue is full!")
		return nil
	}
	fmt.Fprintf(m.out, "Emergency patient %d added with severity %d.\n", id, severity)
	return nil
}

func (m *Menu) processEmergency(ctx context.Context) {
	c, err := m.desk.Emergencies.TreatNext(ctx)
	if err != nil {
		fmt.Fprintln(m.out, "No emergency patients.")
		return
	}
	fmt.Fprintf(m.out, "Processing emergency patient %d with severity %d.\n", c.PatientID, c.Severity)
}

func (m *Menu) recordVisit(ctx context.Context) error {
	id, err := m.promptInt("Enter Patient ID: ")
	if err != nil {
		return err
	}
	if err := m.desk.Visits.Record(ctx, id); err != nil {
		fmt.Fprintln(m.out, "History full!")
		return nil
	}
	fmt.Fprintf(m.out, "Doctor visited patient ID: %d\n", id)
	return nil
}

func (m *Menu) lastVisit(ctx context.Context) {
	id, err := m.desk.Visits.Last(ctx)
	if err != nil {
		fmt.Fprintln(m.out, "No patient history.")
		return
	}
	fmt.Fprintf(m.out, "Last visited patient ID: %d\n", id)
}

func (m *Menu) promptWord(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return m.in.Text(), nil
}

func (m *Menu) promptInt(prompt string) (int, error) {
	tok, err := m.promptWord(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", tok, errBadNumber)
	}
	return n, nil
}

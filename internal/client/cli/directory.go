package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sustena/console/internal/client/models"
)

// Users lists console users from the directory.
func (a *App) Users(ctx context.Context) error {
	users, err := a.directory.ListUsers(ctx, models.ListQuery{})
	if err != nil {
		fmt.Println("Users:", err.Error())
		return err
	}

	for _, u := range users {
		fmt.Printf("%s\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName(), strings.Join(u.Roles, ","))
	}
	fmt.Printf("%d user(s)\n", len(users))
	return nil
}

// SalesReps lists sales representatives from the directory.
func (a *App) SalesReps(ctx context.Context) error {
	reps, err := a.directory.ListSalesReps(ctx, models.ListQuery{})
	if err != nil {
		fmt.Println("Sales reps:", err.Error())
		return err
	}

	for _, r := range reps {
		active := "inactive"
		if r.Active {
			active = "active"
		}
		fmt.Printf("%s\t%s %s\t%s\t%s\n", r.ID, r.FirstName, r.LastName, r.Email, active)
	}
	fmt.Printf("%d sales rep(s)\n", len(reps))
	return nil
}

// Customers lists customers from the directory.
func (a *App) Customers(ctx context.Context) error {
	customers, err := a.directory.ListCustomers(ctx, models.ListQuery{})
	if err != nil {
		fmt.Println("Customers:", err.Error())
		return err
	}

	for _, c := range customers {
		fmt.Printf("%s\t%s\t%s\t%d report(s)\n", c.ID, c.Name, c.Email, c.ReportCount)
	}
	fmt.Printf("%d customer(s)\n", len(customers))
	return nil
}

// AddUser prompts for the new user's details and creates the account. The
// password is checked against the reset policy before the request is sent.
func (a *App) AddUser(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		return err
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		return err
	}
	role, err := getSimpleText(a.reader, "Role", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	if err := models.ValidatePassword(password); err != nil {
		fmt.Println("Add user failed:", err.Error())
		return err
	}

	created, err := a.directory.CreateUser(ctx, models.NewUser{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		Role:      role,
	})
	if err != nil {
		fmt.Println("Add user failed:", err.Error())
		return err
	}

	fmt.Printf("Created %s <%s>\n", created.FullName(), created.Email)
	return nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/gorm"

	"fit-planner/internal/bot"
	"fit-planner/internal/config"
	"fit-planner/internal/repository"
	"fit-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	offline := len(os.Args) > 1
	if err != nil && !(offline && errors.Is(err, config.ErrMissingToken)) {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	store := repository.NewPlannerStore(repository.NewRecordRepository(db))

	plannerSvc := service.NewPlannerService(store, cfg.Location)
	backupSvc := service.NewBackupService(plannerSvc)
	reminderSvc := service.NewReminderService()

	if offline {
		if err := runCommand(ctx, os.Args[1], os.Args[2:], userRepo, backupSvc); err != nil {
			log.Fatalf("%s: %v", os.Args[1], err)
		}
		return
	}

	calendarSvc := service.NewCalendarService(cfg.Location, cfg.WorkoutTime)

	telegramBot, err := bot.New(cfg.TelegramToken, userRepo, plannerSvc, backupSvc, reminderSvc, calendarSvc)
	if err != nil {
		log.Fatalf("bot: %v", err)
	}

	scheduler := service.NewSchedulerService(cfg.Location)
	if _, err := scheduler.ScheduleDaily("rollover", cfg.RolloverTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := plannerSvc.Rollover(jobCtx); err != nil {
			log.Printf("rollover: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule rollover: %v", err)
	}
	if _, err := scheduler.ScheduleDaily("morning-plan", cfg.ReportTime, func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := telegramBot.SendMorningPlans(jobCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("morning plan: %v", err)
		}
	}); err != nil {
		log.Fatalf("schedule morning plan: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	log.Printf("Fit planner bot started (tz=%s, plan at %s).", cfg.Location, cfg.ReportTime)
	if err := telegramBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("bot stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}

// runCommand handles the offline backup subcommands:
//
//	fitplanner export -telegram-id 123 [-out backup.json]
//	fitplanner restore -telegram-id 123 -in backup.json
func runCommand(ctx context.Context, name string, args []string, users *repository.UserRepository, backups *service.BackupService) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	telegramID := fs.Int64("telegram-id", 0, "telegram user id that owns the data")
	out := fs.String("out", "", "export: output file (stdout when empty)")
	in := fs.String("in", "", "restore: backup file to load")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *telegramID == 0 {
		return errors.New("-telegram-id is required")
	}

	switch name {
	case "export":
		user, err := users.FindByTelegramID(ctx, *telegramID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("no user with telegram id %d", *telegramID)
		}
		if err != nil {
			return err
		}
		data, err := backups.Export(ctx, user.ID)
		if err != nil {
			return err
		}
		if *out == "" {
			_, err = os.Stdout.Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(*out, data, 0o600); err != nil {
			return err
		}
		log.Printf("[info] backup written to %s", *out)
		return nil
	case "restore":
		if *in == "" {
			return errors.New("-in is required")
		}
		data, err := os.ReadFile(*in)
		if err != nil {
			return err
		}
		user, err := users.FindByTelegramID(ctx, *telegramID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Private chats share the user's id.
			user, err = users.UpsertFromTelegram(ctx, *telegramID, *telegramID, "", "", "")
		}
		if err != nil {
			return err
		}
		return backups.Restore(ctx, user.ID, data)
	default:
		return fmt.Errorf("unknown command %q, expected export or restore", name)
	}
}

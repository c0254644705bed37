// Package scheduler contém os serviços de agendamento de manutenção
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/adpilot/fb-campaign-api/infrastructure/repository"
	"github.com/adpilot/fb-campaign-api/internal/config"
)

type AuditPruneConfig struct {
	CronSchedule  string
	Enabled       bool
	RetentionDays int
}

// AuditPruneService remove periodicamente registros antigos da trilha de
// auditoria, mantendo apenas a janela de retenção configurada.
type AuditPruneService struct {
	scheduler *gocron.Scheduler
	auditRepo repository.OperationAuditRepository
	config    AuditPruneConfig
}

func NewAuditPruneService(
	auditRepo repository.OperationAuditRepository,
	cfg *config.Config,
) *AuditPruneService {
	pruneConfig := AuditPruneConfig{
		CronSchedule:  cfg.AuditTrail.PruneCron, // Default: 2h da manhã todos os dias
		Enabled:       cfg.AuditTrail.Enabled,
		RetentionDays: cfg.AuditTrail.RetentionDays,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  pruneConfig.CronSchedule,
		"retention_days": pruneConfig.RetentionDays,
	}).Info("Configuração do agendador de limpeza da auditoria carregada")

	return &AuditPruneService{
		scheduler: scheduler,
		auditRepo: auditRepo,
		config:    pruneConfig,
	}
}

func (s *AuditPruneService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de limpeza da auditoria desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza da auditoria")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.PruneExpired(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza da trilha de auditoria")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza da auditoria: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza da auditoria")
		s.scheduler.Stop()
	}()

	return nil
}

// PruneExpired apaga registros mais antigos que a janela de retenção
func (s *AuditPruneService) PruneExpired() error {
	before := time.Now().AddDate(0, 0, -s.config.RetentionDays)

	removed, err := s.auditRepo.PruneOlderThan(before)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"removed": removed,
		"before":  before.Format(time.RFC3339),
	}).Info("Limpeza da trilha de auditoria concluída")

	return nil
}

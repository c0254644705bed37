// Package auditing grava o desfecho de cada chamada à Graph API quando a trilha
// de auditoria está habilitada. A gravação nunca bloqueia a operação: falha de
// auditoria gera warning no log e nada mais.
package auditing

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adpilot/fb-campaign-api/infrastructure/repository"
	"github.com/adpilot/fb-campaign-api/internal/domain"
	"github.com/adpilot/fb-campaign-api/pkg/utils"
)

type Recorder struct {
	repo repository.OperationAuditRepository
}

// NewRecorder cria um Recorder; repo nil desabilita a gravação
func NewRecorder(repo repository.OperationAuditRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Record grava o desfecho de uma operação. Tokens nunca são gravados.
func (r *Recorder) Record(operation, targetID string, callErr error) {
	if r == nil || r.repo == nil {
		return
	}

	id, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar id do registro de auditoria")
		return
	}

	entry := &domain.OperationAudit{
		ID:        id,
		Operation: operation,
		TargetID:  targetID,
		Success:   callErr == nil,
		CreatedAt: time.Now(),
	}
	if callErr != nil {
		entry.ErrorMessage = callErr.Error()
	}

	if err := r.repo.Record(entry); err != nil {
		logrus.WithError(err).WithField("operation", operation).Warn("Erro ao gravar auditoria da operação")
	}
}

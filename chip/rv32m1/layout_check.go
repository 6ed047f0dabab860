package rv32m1

import "unsafe"

// Each line fails to compile if an overlay struct and its documented block
// size disagree.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(DMA_TYPE{})-DMA_SIZE]
	_ = [1]struct{}{}[DMA_SIZE-unsafe.Sizeof(DMA_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(DMAMUX_TYPE{})-DMAMUX_SIZE]
	_ = [1]struct{}{}[DMAMUX_SIZE-unsafe.Sizeof(DMAMUX_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(INTMUX_TYPE{})-INTMUX_SIZE]
	_ = [1]struct{}{}[INTMUX_SIZE-unsafe.Sizeof(INTMUX_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(SEMA42_TYPE{})-SEMA42_SIZE]
	_ = [1]struct{}{}[SEMA42_SIZE-unsafe.Sizeof(SEMA42_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(FTFE_TYPE{})-FTFE_SIZE]
	_ = [1]struct{}{}[FTFE_SIZE-unsafe.Sizeof(FTFE_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(NV_TYPE{})-NV_SIZE]
	_ = [1]struct{}{}[NV_SIZE-unsafe.Sizeof(NV_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(SMC_TYPE{})-SMC_SIZE]
	_ = [1]struct{}{}[SMC_SIZE-unsafe.Sizeof(SMC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(PCC_TYPE{})-PCC_SIZE]
	_ = [1]struct{}{}[PCC_SIZE-unsafe.Sizeof(PCC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(WDOG_TYPE{})-WDOG_SIZE]
	_ = [1]struct{}{}[WDOG_SIZE-unsafe.Sizeof(WDOG_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(CRC_TYPE{})-CRC_SIZE]
	_ = [1]struct{}{}[CRC_SIZE-unsafe.Sizeof(CRC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPIT_TYPE{})-LPIT_SIZE]
	_ = [1]struct{}{}[LPIT_SIZE-unsafe.Sizeof(LPIT_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(RTC_TYPE{})-RTC_SIZE]
	_ = [1]struct{}{}[RTC_SIZE-unsafe.Sizeof(RTC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPTMR_TYPE{})-LPTMR_SIZE]
	_ = [1]struct{}{}[LPTMR_SIZE-unsafe.Sizeof(LPTMR_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(TSTMR_TYPE{})-TSTMR_SIZE]
	_ = [1]struct{}{}[TSTMR_SIZE-unsafe.Sizeof(TSTMR_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(TPM_TYPE{})-TPM_SIZE]
	_ = [1]struct{}{}[TPM_SIZE-unsafe.Sizeof(TPM_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPI2C_TYPE{})-LPI2C_SIZE]
	_ = [1]struct{}{}[LPI2C_SIZE-unsafe.Sizeof(LPI2C_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPSPI_TYPE{})-LPSPI_SIZE]
	_ = [1]struct{}{}[LPSPI_SIZE-unsafe.Sizeof(LPSPI_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPUART_TYPE{})-LPUART_SIZE]
	_ = [1]struct{}{}[LPUART_SIZE-unsafe.Sizeof(LPUART_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(PORT_TYPE{})-PORT_SIZE]
	_ = [1]struct{}{}[PORT_SIZE-unsafe.Sizeof(PORT_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPCMP_TYPE{})-LPCMP_SIZE]
	_ = [1]struct{}{}[LPCMP_SIZE-unsafe.Sizeof(LPCMP_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(VREF_TYPE{})-VREF_SIZE]
	_ = [1]struct{}{}[VREF_SIZE-unsafe.Sizeof(VREF_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(EWM_TYPE{})-EWM_SIZE]
	_ = [1]struct{}{}[EWM_SIZE-unsafe.Sizeof(EWM_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(MU_TYPE{})-MU_SIZE]
	_ = [1]struct{}{}[MU_SIZE-unsafe.Sizeof(MU_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(GPIO_TYPE{})-GPIO_SIZE]
	_ = [1]struct{}{}[GPIO_SIZE-unsafe.Sizeof(GPIO_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(FGPIO_TYPE{})-FGPIO_SIZE]
	_ = [1]struct{}{}[FGPIO_SIZE-unsafe.Sizeof(FGPIO_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(CMC_TYPE{})-CMC_SIZE]
	_ = [1]struct{}{}[CMC_SIZE-unsafe.Sizeof(CMC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LLWU_TYPE{})-LLWU_SIZE]
	_ = [1]struct{}{}[LLWU_SIZE-unsafe.Sizeof(LLWU_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(SPM_TYPE{})-SPM_SIZE]
	_ = [1]struct{}{}[SPM_SIZE-unsafe.Sizeof(SPM_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(SCG_TYPE{})-SCG_SIZE]
	_ = [1]struct{}{}[SCG_SIZE-unsafe.Sizeof(SCG_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(SIM_TYPE{})-SIM_SIZE]
	_ = [1]struct{}{}[SIM_SIZE-unsafe.Sizeof(SIM_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(TRGMUX_TYPE{})-TRGMUX_SIZE]
	_ = [1]struct{}{}[TRGMUX_SIZE-unsafe.Sizeof(TRGMUX_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(MSCM_TYPE{})-MSCM_SIZE]
	_ = [1]struct{}{}[MSCM_SIZE-unsafe.Sizeof(MSCM_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(EVENT_TYPE{})-EVENT_SIZE]
	_ = [1]struct{}{}[EVENT_SIZE-unsafe.Sizeof(EVENT_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(CAU3_TYPE{})-CAU3_SIZE]
	_ = [1]struct{}{}[CAU3_SIZE-unsafe.Sizeof(CAU3_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(TRNG_TYPE{})-TRNG_SIZE]
	_ = [1]struct{}{}[TRNG_SIZE-unsafe.Sizeof(TRNG_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(EMVSIM_TYPE{})-EMVSIM_SIZE]
	_ = [1]struct{}{}[EMVSIM_SIZE-unsafe.Sizeof(EMVSIM_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(FLEXIO_TYPE{})-FLEXIO_SIZE]
	_ = [1]struct{}{}[FLEXIO_SIZE-unsafe.Sizeof(FLEXIO_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(I2S_TYPE{})-I2S_SIZE]
	_ = [1]struct{}{}[I2S_SIZE-unsafe.Sizeof(I2S_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(USDHC_TYPE{})-USDHC_SIZE]
	_ = [1]struct{}{}[USDHC_SIZE-unsafe.Sizeof(USDHC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(USB_TYPE{})-USB_SIZE]
	_ = [1]struct{}{}[USB_SIZE-unsafe.Sizeof(USB_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPADC_TYPE{})-LPADC_SIZE]
	_ = [1]struct{}{}[LPADC_SIZE-unsafe.Sizeof(LPADC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(LPDAC_TYPE{})-LPDAC_SIZE]
	_ = [1]struct{}{}[LPDAC_SIZE-unsafe.Sizeof(LPDAC_TYPE{})]
	_ = [1]struct{}{}[unsafe.Sizeof(RSIM_TYPE{})-RSIM_SIZE]
	_ = [1]struct{}{}[RSIM_SIZE-unsafe.Sizeof(RSIM_TYPE{})]
)
